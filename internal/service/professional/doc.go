// Package professional implements directory record management.
//
// The service layer contains all business logic for creating, updating, and
// bulk-reconciling professional records: identifier validation, identity
// resolution by email/phone, conflict detection, and uniqueness enforcement.
// It depends on the Repository interface defined in this package and should
// never import from api/.
//
// Repository implementations live in repository/postgres/ and repository/memory/.
package professional
