// Package customer holds the people requests are placed for: the customers
// the operator searches while starting a request and the profile used to
// register a new one.
package customer
