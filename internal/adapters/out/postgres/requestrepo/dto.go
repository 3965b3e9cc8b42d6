// Package requestrepo keeps the last fetched requests in postgres. Detailed
// requests live in the requests and orders tables; the simplified list lives
// in request_summaries and is replaced as a whole on every list fetch.
package requestrepo

import (
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"

	"github.com/shopspring/decimal"
)

// RequestDTO is a detailed request. Products and payments are small value
// lists and are stored as jsonb.
type RequestDTO struct {
	ID         string       `gorm:"type:varchar(64);primaryKey"`
	Type       string       `gorm:"type:varchar(16);not null"`
	Time       time.Time    `gorm:"not null"`
	Status     string       `gorm:"type:varchar(16);not null;index"`
	Orderer    OrdererDTO   `gorm:"embedded;embeddedPrefix:orderer_"`
	Store      StoreDTO     `gorm:"embedded;embeddedPrefix:store_"`
	Invoice    InvoiceDTO   `gorm:"embedded;embeddedPrefix:invoice_"`
	Products   []ProductDTO `gorm:"type:jsonb;serializer:json"`
	Payments   []PaymentDTO `gorm:"type:jsonb;serializer:json"`
	PickUpTime *time.Time
	Remark     string     `gorm:"type:text"`
	Orders     []OrderDTO `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

func (RequestDTO) TableName() string {
	return "requests"
}

type OrdererDTO struct {
	ID           string `gorm:"type:varchar(64)"`
	DisplayName  string `gorm:"type:varchar(255)"`
	MobileNumber string `gorm:"type:varchar(32)"`
	Email        string `gorm:"type:varchar(255)"`
	Address      string `gorm:"type:text"`
}

type StoreDTO struct {
	ID   string `gorm:"type:varchar(64)"`
	Name string `gorm:"type:varchar(255)"`
}

type InvoiceDTO struct {
	Number int
	Time   time.Time
}

type ProductDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	AssignedPrice decimal.Decimal `json:"assignedPrice"`
}

type PaymentDTO struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	Time      time.Time       `json:"time"`
}

// OrderDTO is one order of a detailed request with its service lines,
// images and event log.
type OrderDTO struct {
	ID           string       `gorm:"type:varchar(64);primaryKey"`
	RequestID    string       `gorm:"type:varchar(64);not null;index"`
	Name         string       `gorm:"type:varchar(255)"`
	Type         string       `gorm:"type:varchar(16);not null"`
	Status       string       `gorm:"type:varchar(32);not null;index"`
	Time         time.Time    `gorm:"not null"`
	Services     []ServiceDTO `gorm:"type:jsonb;serializer:json"`
	ImagesBefore []ImageDTO   `gorm:"type:jsonb;serializer:json"`
	ImagesAfter  []ImageDTO   `gorm:"type:jsonb;serializer:json"`
	Events       []EventDTO   `gorm:"type:jsonb;serializer:json"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ServiceDTO struct {
	ID            string          `json:"id"`
	Kind          string          `json:"type"`
	Name          string          `json:"name"`
	AssignedPrice decimal.Decimal `json:"assignedPrice"`
	Done          bool            `json:"done"`
}

type ImageDTO struct {
	ID          string `json:"id"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

type EventDTO struct {
	Type   string    `json:"type"`
	Time   time.Time `json:"time"`
	Status string    `json:"status"`
}

// SummaryDTO is one entry of the simplified request list.
type SummaryDTO struct {
	ID      string            `gorm:"type:varchar(64);primaryKey"`
	Type    string            `gorm:"type:varchar(16);not null"`
	Time    time.Time         `gorm:"not null;index"`
	Orderer OrdererDTO        `gorm:"embedded;embeddedPrefix:orderer_"`
	Store   StoreDTO          `gorm:"embedded;embeddedPrefix:store_"`
	Price   decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Paid    decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Orders  []OrderSummaryDTO `gorm:"type:jsonb;serializer:json"`
}

func (SummaryDTO) TableName() string {
	return "request_summaries"
}

type OrderSummaryDTO struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Name   string `json:"name"`
}

func fromDomain(r *request.Request) RequestDTO {
	products := make([]ProductDTO, 0, len(r.Products()))
	for _, p := range r.Products() {
		products = append(products, ProductDTO{
			ID:            p.ID().String(),
			Name:          p.Name(),
			Quantity:      p.Quantity(),
			AssignedPrice: p.AssignedPrice().Decimal(),
		})
	}

	payments := make([]PaymentDTO, 0, len(r.Payments()))
	for _, p := range r.Payments() {
		payments = append(payments, PaymentDTO{
			Type:      p.Type().String(),
			Amount:    p.Amount().Decimal(),
			Reference: p.Reference(),
			Time:      p.Time(),
		})
	}

	orders := make([]OrderDTO, 0, len(r.Orders()))
	for _, o := range r.Orders() {
		orders = append(orders, orderFromDomain(r.ID(), o))
	}

	return RequestDTO{
		ID:         r.ID().String(),
		Type:       r.Type().String(),
		Time:       r.Time(),
		Status:     r.Status().String(),
		Orderer:    ordererFromDomain(r.Orderer()),
		Store:      StoreDTO{ID: r.Store().ID.String(), Name: r.Store().Name},
		Invoice:    InvoiceDTO{Number: r.Invoice().Number, Time: r.Invoice().Time},
		Products:   products,
		Payments:   payments,
		PickUpTime: r.PickUpTime(),
		Remark:     r.Remark(),
		Orders:     orders,
	}
}

func orderFromDomain(requestID kernel.ID, o *order.Order) OrderDTO {
	services := make([]ServiceDTO, 0, len(o.Services()))
	for _, s := range o.Services() {
		services = append(services, ServiceDTO{
			ID:            s.ID().String(),
			Kind:          s.Kind().String(),
			Name:          s.Name(),
			AssignedPrice: s.AssignedPrice().Decimal(),
			Done:          s.Done(),
		})
	}

	events := make([]EventDTO, 0, len(o.Events()))
	for _, e := range o.Events() {
		events = append(events, EventDTO{Type: e.Kind.String(), Time: e.Time, Status: e.Status.String()})
	}

	return OrderDTO{
		ID:           o.ID().String(),
		RequestID:    requestID.String(),
		Name:         o.Name(),
		Type:         o.Type().String(),
		Status:       o.Status().String(),
		Time:         o.Time(),
		Services:     services,
		ImagesBefore: imagesFromDomain(o.ImagesBefore()),
		ImagesAfter:  imagesFromDomain(o.ImagesAfter()),
		Events:       events,
	}
}

func imagesFromDomain(images []order.Image) []ImageDTO {
	dtos := make([]ImageDTO, 0, len(images))
	for _, img := range images {
		dtos = append(dtos, ImageDTO(img))
	}
	return dtos
}

func ordererFromDomain(o request.Orderer) OrdererDTO {
	return OrdererDTO{
		ID:           o.ID.String(),
		DisplayName:  o.DisplayName,
		MobileNumber: o.MobileNumber,
		Email:        o.Email,
		Address:      o.Address,
	}
}

func summaryFromDomain(s request.Summary) SummaryDTO {
	orders := make([]OrderSummaryDTO, 0, len(s.Orders))
	for _, o := range s.Orders {
		orders = append(orders, OrderSummaryDTO{
			ID:     o.ID.String(),
			Type:   o.Type.String(),
			Status: o.Status.String(),
			Name:   o.Name,
		})
	}
	return SummaryDTO{
		ID:      s.ID.String(),
		Type:    s.Type.String(),
		Time:    s.Time,
		Orderer: ordererFromDomain(s.Orderer),
		Store:   StoreDTO{ID: s.Store.ID.String(), Name: s.Store.Name},
		Price:   s.Price.Decimal(),
		Paid:    s.Paid.Decimal(),
		Orders:  orders,
	}
}

// toDomain rebuilds the aggregate. Every stored value went through the domain
// on the way in, so a failure here means the table was edited by hand.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	kind, err := order.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	orderer, err := ordererToDomain(dto.Orderer)
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.NewID(dto.Store.ID)
	if err != nil {
		return nil, err
	}

	products := make([]request.ProductLine, 0, len(dto.Products))
	for _, p := range dto.Products {
		line, lineErr := productToDomain(p)
		if lineErr != nil {
			return nil, lineErr
		}
		products = append(products, line)
	}

	payments := make([]request.Payment, 0, len(dto.Payments))
	for _, p := range dto.Payments {
		payment, paymentErr := paymentToDomain(p)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, payment)
	}

	orders := make([]*order.Order, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		restored, orderErr := orderToDomain(o)
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, restored)
	}

	return request.RestoreRequest(request.RestoreParams{
		ID:         id,
		Type:       kind,
		Time:       dto.Time,
		Orderer:    orderer,
		Store:      request.Store{ID: storeID, Name: dto.Store.Name},
		Status:     status,
		Orders:     orders,
		Products:   products,
		Invoice:    request.Invoice{Number: dto.Invoice.Number, Time: dto.Invoice.Time},
		Payments:   payments,
		PickUpTime: dto.PickUpTime,
		Remark:     dto.Remark,
	})
}

func ordererToDomain(dto OrdererDTO) (request.Orderer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return request.Orderer{}, err
	}
	return request.Orderer{
		ID:           id,
		DisplayName:  dto.DisplayName,
		MobileNumber: dto.MobileNumber,
		Email:        dto.Email,
		Address:      dto.Address,
	}, nil
}

func productToDomain(dto ProductDTO) (request.ProductLine, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return request.ProductLine{}, err
	}
	price, err := kernel.NewMoney(dto.AssignedPrice)
	if err != nil {
		return request.ProductLine{}, err
	}
	return request.NewProductLine(id, dto.Name, dto.Quantity, price)
}

func paymentToDomain(dto PaymentDTO) (request.Payment, error) {
	kind, err := request.ParsePaymentType(dto.Type)
	if err != nil {
		return request.Payment{}, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return request.Payment{}, err
	}
	return request.NewPayment(kind, amount, dto.Reference, dto.Time)
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	kind, err := order.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	services := make([]order.ServiceOrdered, 0, len(dto.Services))
	for _, s := range dto.Services {
		line, lineErr := serviceToDomain(s)
		if lineErr != nil {
			return nil, lineErr
		}
		services = append(services, line)
	}

	events := make([]order.Event, 0, len(dto.Events))
	for _, e := range dto.Events {
		ek, kindErr := order.ParseEventKind(e.Type)
		if kindErr != nil {
			return nil, kindErr
		}
		es, statusErr := order.ParseStatus(e.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		events = append(events, order.Event{Kind: ek, Time: e.Time, Status: es})
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:           id,
		Name:         dto.Name,
		Type:         kind,
		Status:       status,
		Time:         dto.Time,
		Services:     services,
		ImagesBefore: imagesToDomain(dto.ImagesBefore),
		ImagesAfter:  imagesToDomain(dto.ImagesAfter),
		Events:       events,
	})
}

func serviceToDomain(dto ServiceDTO) (order.ServiceOrdered, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return order.ServiceOrdered{}, err
	}
	kind, err := order.ParseServiceKind(dto.Kind)
	if err != nil {
		return order.ServiceOrdered{}, err
	}
	price, err := kernel.NewMoney(dto.AssignedPrice)
	if err != nil {
		return order.ServiceOrdered{}, err
	}
	return order.NewServiceOrdered(id, kind, dto.Name, price, dto.Done)
}

func imagesToDomain(dtos []ImageDTO) []order.Image {
	images := make([]order.Image, 0, len(dtos))
	for _, dto := range dtos {
		images = append(images, order.Image(dto))
	}
	return images
}
