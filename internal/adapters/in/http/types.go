package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ServiceChoice struct {
	Id    string   `json:"id"`
	Price *float64 `json:"price,omitempty"`
}

type ProductChoice struct {
	Id       string   `json:"id"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price,omitempty"`
}

type NewOrder struct {
	Name     string          `json:"name"`
	Services []ServiceChoice `json:"services"`
}

type NewRequest struct {
	StoreId   *string         `json:"storeId,omitempty"`
	OrdererId string          `json:"ordererId"`
	Orders    []NewOrder      `json:"orders"`
	Products  []ProductChoice `json:"products,omitempty"`
}

type CancelRequestBody struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

type NewPayment struct {
	Type      string     `json:"type"`
	Amount    float64    `json:"amount"`
	Reference *string    `json:"reference,omitempty"`
	Time      *time.Time `json:"time,omitempty"`
}

type UpdateProductsBody struct {
	Products []ProductChoice `json:"products"`
}

type UpdatePickUpTimeBody struct {
	Time time.Time `json:"time"`
}

type UpdateRemarkBody struct {
	Remark string `json:"remark"`
}

type UpdateServiceProgressBody struct {
	ServicesDone []string `json:"servicesDone"`
}

type UpdateOrderServicesBody struct {
	Services []ServiceChoice `json:"services"`
}

type OrderSummary struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type RequestSummary struct {
	Id          string         `json:"id"`
	Type        string         `json:"type"`
	Time        time.Time      `json:"time"`
	Orderer     string         `json:"orderer"`
	Store       string         `json:"store"`
	Price       float64        `json:"price"`
	Paid        float64        `json:"paid"`
	Outstanding float64        `json:"outstanding"`
	Orders      []OrderSummary `json:"orders"`
}

type Orderer struct {
	Id           string `json:"id"`
	DisplayName  string `json:"displayName"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
}

type Store struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type ProductLine struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Payment struct {
	Type      string     `json:"type"`
	Amount    float64    `json:"amount"`
	Reference string     `json:"reference,omitempty"`
	Time      *time.Time `json:"time,omitempty"`
}

type Service struct {
	Id    string  `json:"id"`
	Type  string  `json:"type"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Done  bool    `json:"done"`
}

type Image struct {
	Id          string `json:"id"`
	ContentType string `json:"contentType"`
	Url         string `json:"url"`
}

type Event struct {
	Kind   string    `json:"kind"`
	Time   time.Time `json:"time"`
	Status string    `json:"status"`
}

type Order struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Time            time.Time `json:"time"`
	Price           float64   `json:"price"`
	Services        []Service `json:"services"`
	ImagesBefore    []Image   `json:"imagesBefore"`
	ImagesAfter     []Image   `json:"imagesAfter"`
	Events          []Event   `json:"events"`
	NextAction      *string   `json:"nextAction"`
	CanUndo         bool      `json:"canUndo"`
	CanEditServices bool      `json:"canEditServices"`
}

type Request struct {
	Id            string        `json:"id"`
	Type          string        `json:"type"`
	Time          time.Time     `json:"time"`
	Status        string        `json:"status"`
	Orderer       Orderer       `json:"orderer"`
	Store         Store         `json:"store"`
	Invoice       string        `json:"invoice"`
	InvoiceNumber int           `json:"invoiceNumber"`
	Products      []ProductLine `json:"products"`
	Payments      []Payment     `json:"payments"`
	PickUpTime    *time.Time    `json:"pickUpTime,omitempty"`
	Remark        string        `json:"remark"`
	Price         float64       `json:"price"`
	Paid          float64       `json:"paid"`
	Outstanding   float64       `json:"outstanding"`
	Editable      bool          `json:"editable"`
	Orders        []Order       `json:"orders"`
}

type LockerUnit struct {
	Id     string `json:"id"`
	Number int    `json:"number"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

type Locker struct {
	Id      string       `json:"id"`
	Name    string       `json:"name"`
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Units   []LockerUnit `json:"units"`
}

type OpenedUnit struct {
	HandoffId uuid.UUID  `json:"handoffId"`
	Action    string     `json:"action"`
	Unit      LockerUnit `json:"unit"`
	Locker    Locker     `json:"locker"`
}

type Handoff struct {
	Id         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	RequestId  string    `json:"requestId"`
	OrderId    string    `json:"orderId"`
	UnitId     string    `json:"unitId"`
	UnitNumber int       `json:"unitNumber"`
	LockerName string    `json:"lockerName"`
	OpenedAt   time.Time `json:"openedAt"`
}

type NewCustomer struct {
	DisplayName  string  `json:"displayName"`
	MobileNumber string  `json:"mobileNumber"`
	Email        string  `json:"email"`
	Address      *string `json:"address,omitempty"`
}

type Customer struct {
	Id           string `json:"id"`
	DisplayName  string `json:"displayName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Address      string `json:"address,omitempty"`
	Employee     string `json:"employee,omitempty"`
}

type Branch struct {
	Id                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Address            string `json:"address,omitempty"`
	MobileNumber       string `json:"mobileNumber,omitempty"`
	Email              string `json:"email,omitempty"`
}

type Balances struct {
	Cash           float64 `json:"cash"`
	Bank           float64 `json:"bank"`
	PaymentGateway float64 `json:"paymentGateway"`
	Total          float64 `json:"total"`
}

type StoreEntry struct {
	Type   string    `json:"type"`
	Detail string    `json:"detail"`
	Time   time.Time `json:"time"`
	Amount float64   `json:"amount"`
}

type StoreDetail struct {
	Store    Branch       `json:"store"`
	Balances Balances     `json:"balances"`
	Profit   float64      `json:"profit"`
	Expense  float64      `json:"expense"`
	From     time.Time    `json:"from"`
	To       time.Time    `json:"to"`
	Entries  []StoreEntry `json:"entries"`
}

// GetRequestsParams defines parameters for GetRequests.
type GetRequestsParams struct {
	Cached *bool `form:"cached,omitempty" json:"cached,omitempty"`
}

// GetRequestParams defines parameters for GetRequest.
type GetRequestParams struct {
	Cached *bool `form:"cached,omitempty" json:"cached,omitempty"`
}

// ImageStage defines the path parameter of AddOrderImages.
type ImageStage string

const (
	Before ImageStage = "before"
	After  ImageStage = "after"
)

// GetStoreParams defines parameters for GetStore.
type GetStoreParams struct {
	From *time.Time `form:"from,omitempty" json:"from,omitempty"`
	To   *time.Time `form:"to,omitempty" json:"to,omitempty"`
}

// GetCustomersParams defines parameters for GetCustomers.
type GetCustomersParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}
