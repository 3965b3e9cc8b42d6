package request

import "dashboard/internal/core/domain/model/kernel"

// Orderer is the customer who placed the request.
type Orderer struct {
	ID           kernel.ID
	DisplayName  string
	MobileNumber string
	Email        string
	Address      string
}

// Store is the branch that handles the request.
type Store struct {
	ID   kernel.ID
	Name string
}
