// Package services contains domain logic that does not belong to a single aggregate.
//
// AccessPolicy is the authorization matrix: for every Operation it records which
// roles are allowed, denied, or allowed only on resources they are a party to.
// Use cases call it with the explicit kernel.Caller of the request.
package services
