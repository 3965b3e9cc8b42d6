// Package errs provides the error types shared by the dashboard packages.
//
// Errors fall into four groups:
//   - ErrNotAuthenticated: there is no signed-in session, raised before any network call
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: client-side
//     validation raised before a mutation is submitted
//   - RemoteError: the GraphQL API rejected the request; Error() is the server message verbatim
//   - TransportError: the request never produced a GraphQL response
//
// ObjectNotFoundError is used by the local read model.
//
// Every typed error unwraps to its sentinel so callers can classify with errors.Is.
package errs
