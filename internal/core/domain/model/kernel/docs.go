// Package kernel provides the primitives shared by every aggregate of the parcels
// domain.
//
// The package includes:
//   - UUID: the opaque identifier of a package
//   - Role and Caller: the authenticated identity passed explicitly into use cases
//   - Decimal shape checks: exact numeric(precision, scale) validation for money and weight
//
// Values are immutable and safe for concurrent use.
package kernel
