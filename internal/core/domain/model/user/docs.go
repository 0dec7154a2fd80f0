// Package user provides the User aggregate: staff members (Admin, Manager) who log in
// with a password, and clients who send and receive packages.
//
// Key business rules:
//   - First and last name and phone number are required
//   - Email is optional; when present it is unique among users that have one
//   - Phone number is always unique
//   - Admin and Manager accounts must carry a password hash
package user
