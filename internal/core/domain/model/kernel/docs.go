// Package kernel holds the value objects shared by every aggregate of the dashboard:
//   - ID: an identifier issued by the remote GraphQL API
//   - UUID: an identifier the dashboard issues itself
//   - Money: a non-negative decimal amount
//
// Zero values of ID and UUID are invalid and fail Validate.
package kernel
