// Package ports defines the contracts between the application core and its
// adapters: the remote GraphQL API, the signed-in session and the local read
// model.
package ports

import (
	"context"
	"time"

	"dashboard/internal/core/domain/model/catalog"
	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/model/store"
)

// File is an upload forwarded to the remote as a multipart part.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ServiceInput is a service line to submit. Price is the resolved price.
type ServiceInput struct {
	ID    kernel.ID
	Price kernel.Money
}

type ProductInput struct {
	ID       kernel.ID
	Quantity int
	Price    kernel.Money
}

type NewOrderInput struct {
	Name     string
	Services []ServiceInput
}

type NewRequestInput struct {
	StoreID   kernel.ID
	OrdererID kernel.ID
	Orders    []NewOrderInput
	Products  []ProductInput
}

type Email struct {
	To          string
	Subject     string
	Text        string
	Attachments []File
}

// RequestGateway covers the request level operations of the remote API.
// Every method fails with errs.ErrNotAuthenticated before any network call
// when nobody is signed in.
type RequestGateway interface {
	DisplayRequests(ctx context.Context) ([]request.Summary, error)
	DisplayRequest(ctx context.Context, id kernel.ID) (*request.Request, error)
	AddRequest(ctx context.Context, input NewRequestInput) (kernel.ID, error)
	CancelRequest(ctx context.Context, id kernel.ID) error
	AddRequestPayment(ctx context.Context, id kernel.ID, payment request.Payment) error
	UpdateRequestProducts(ctx context.Context, id kernel.ID, products []ProductInput) error
	AddRequestPickUpTime(ctx context.Context, id kernel.ID, at time.Time) error
	UpdateRequestRemark(ctx context.Context, id kernel.ID, remark string) error
	SendEmail(ctx context.Context, email Email) error
}

// OrderGateway covers the order actions. The two locker methods are phase one
// of the locker protocol and return the layout of the opened unit;
// ConfirmCloseLocker is phase two.
type OrderGateway interface {
	RequestRetrieveStore(ctx context.Context, orderID kernel.ID) (locker.Layout, error)
	DeliverBackLocker(ctx context.Context, orderID kernel.ID) (locker.Layout, error)
	ConfirmCloseLocker(ctx context.Context, lockerUnitID kernel.ID) error
	AddBeforeImages(ctx context.Context, orderID kernel.ID, images []File) error
	AddAfterImages(ctx context.Context, orderID kernel.ID, images []File) error
	UpdateServiceStatus(ctx context.Context, orderID kernel.ID, servicesDone []kernel.ID) error
	ConfirmRetrieve(ctx context.Context, orderID kernel.ID) error
	UndoOrder(ctx context.Context, orderID kernel.ID) error
	UpdateOrderServices(ctx context.Context, orderID kernel.ID, services []ServiceInput) error
}

type CatalogGateway interface {
	DisplayServices(ctx context.Context) ([]catalog.Service, error)
	DisplayProducts(ctx context.Context) ([]catalog.Product, error)
}

// StoreGateway covers the finance pages. DisplayStore loads the entries
// recorded in [after, before).
type StoreGateway interface {
	DisplayStores(ctx context.Context) ([]store.Store, error)
	DisplayStore(ctx context.Context, id kernel.ID, after, before time.Time) (store.Detail, error)
	AddTransaction(ctx context.Context, transaction store.Transaction, attachments []File) error
}

type CustomerGateway interface {
	DisplayUsers(ctx context.Context) ([]customer.Customer, error)
	AddUser(ctx context.Context, profile customer.Profile) (customer.Customer, error)
}

// Gateway is the remote API used by the request and order pages.
type Gateway interface {
	RequestGateway
	OrderGateway
	CatalogGateway
}
