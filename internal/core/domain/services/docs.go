// Package services contains domain services that validate operator choices
// against the catalog before anything is sent to the remote API.
package services
