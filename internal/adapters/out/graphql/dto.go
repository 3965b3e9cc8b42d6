package graphql

import (
	"time"

	"dashboard/internal/core/domain/model/catalog"
	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
)

type userDTO struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

type storeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type orderSummaryDTO struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Name   string `json:"name"`
}

type requestSummaryDTO struct {
	ID      string            `json:"id"`
	Type    string            `json:"type"`
	Time    time.Time         `json:"time"`
	Orderer userDTO           `json:"orderer"`
	Store   storeDTO          `json:"store"`
	Price   decimal.Decimal   `json:"price"`
	Paid    decimal.Decimal   `json:"paid"`
	Orders  []orderSummaryDTO `json:"orders"`
}

type serviceOrderedDTO struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Name          string          `json:"name"`
	AssignedPrice decimal.Decimal `json:"assignedPrice"`
	Done          bool            `json:"done"`
}

type fileDTO struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type eventDTO struct {
	Type   string    `json:"type"`
	Time   time.Time `json:"time"`
	Status string    `json:"_status"`
}

type orderDTO struct {
	ID           string              `json:"id"`
	Type         string              `json:"type"`
	Status       string              `json:"status"`
	Name         string              `json:"name"`
	Time         time.Time           `json:"time"`
	Services     []serviceOrderedDTO `json:"services"`
	ImagesBefore []fileDTO           `json:"imagesBefore"`
	ImagesAfter  []fileDTO           `json:"imagesAfter"`
	Events       []eventDTO          `json:"events"`
}

type productLineDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	AssignedPrice decimal.Decimal `json:"assignedPrice"`
}

type paymentDTO struct {
	Type      string          `json:"type"`
	Time      time.Time       `json:"time"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

type invoiceDTO struct {
	Time   time.Time `json:"time"`
	Number int       `json:"number"`
}

type requestDTO struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Time       time.Time        `json:"time"`
	Orderer    userDTO          `json:"orderer"`
	Store      storeDTO         `json:"store"`
	Status     string           `json:"status"`
	Products   []productLineDTO `json:"products"`
	Invoice    invoiceDTO       `json:"invoice"`
	Payments   []paymentDTO     `json:"payments"`
	PickUpTime *time.Time       `json:"pickUpTime"`
	Remark     string           `json:"remark"`
	Orders     []orderDTO       `json:"orders"`
}

type lockerUnitDTO struct {
	ID     string     `json:"id"`
	Number int        `json:"number"`
	Row    int        `json:"row"`
	Column int        `json:"column"`
	Locker *lockerDTO `json:"locker"`
}

type lockerDTO struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Rows    int             `json:"rows"`
	Columns int             `json:"columns"`
	Units   []lockerUnitDTO `json:"units"`
}

type priceDTO struct {
	Type   string           `json:"type"`
	Amount *decimal.Decimal `json:"amount"`
}

type serviceDTO struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Price   priceDTO `json:"price"`
	Icon    string   `json:"icon"`
	Exclude []struct {
		ID string `json:"id"`
	} `json:"exclude"`
}

type productDTO struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price priceDTO `json:"price"`
}

type idDTO struct {
	ID string `json:"id"`
}

func summaryToDomain(dto requestSummaryDTO) (request.Summary, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return request.Summary{}, err
	}
	kind, err := order.ParseType(dto.Type)
	if err != nil {
		return request.Summary{}, err
	}
	orderer, err := ordererToDomain(dto.Orderer)
	if err != nil {
		return request.Summary{}, err
	}
	store, err := storeToDomain(dto.Store)
	if err != nil {
		return request.Summary{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return request.Summary{}, err
	}
	paid, err := kernel.NewMoney(dto.Paid)
	if err != nil {
		return request.Summary{}, err
	}

	orders := make([]request.OrderSummary, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		orderID, idErr := kernel.NewID(o.ID)
		if idErr != nil {
			return request.Summary{}, idErr
		}
		orderKind, kindErr := order.ParseType(o.Type)
		if kindErr != nil {
			return request.Summary{}, kindErr
		}
		status, statusErr := order.ParseStatus(o.Status)
		if statusErr != nil {
			return request.Summary{}, statusErr
		}
		orders = append(orders, request.OrderSummary{ID: orderID, Type: orderKind, Status: status, Name: o.Name})
	}

	return request.Summary{
		ID:      id,
		Type:    kind,
		Time:    dto.Time,
		Orderer: orderer,
		Store:   store,
		Price:   price,
		Paid:    paid,
		Orders:  orders,
	}, nil
}

func requestToDomain(dto requestDTO) (*request.Request, error) {
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
	store, err := storeToDomain(dto.Store)
	if err != nil {
		return nil, err
	}

	products := make([]request.ProductLine, 0, len(dto.Products))
	for _, p := range dto.Products {
		productID, idErr := kernel.NewID(p.ID)
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(p.AssignedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := request.NewProductLine(productID, p.Name, p.Quantity, price)
		if lineErr != nil {
			return nil, lineErr
		}
		products = append(products, line)
	}

	payments := make([]request.Payment, 0, len(dto.Payments))
	for _, p := range dto.Payments {
		paymentKind, kindErr := request.ParsePaymentType(p.Type)
		if kindErr != nil {
			return nil, kindErr
		}
		amount, amountErr := kernel.NewMoney(p.Amount)
		if amountErr != nil {
			return nil, amountErr
		}
		payment, paymentErr := request.NewPayment(paymentKind, amount, p.Reference, p.Time)
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
		Store:      store,
		Status:     status,
		Orders:     orders,
		Products:   products,
		Invoice:    request.Invoice{Number: dto.Invoice.Number, Time: dto.Invoice.Time},
		Payments:   payments,
		PickUpTime: dto.PickUpTime,
		Remark:     dto.Remark,
	})
}

func orderToDomain(dto orderDTO) (*order.Order, error) {
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
		serviceID, idErr := kernel.NewID(s.ID)
		if idErr != nil {
			return nil, idErr
		}
		serviceKind, kindErr := order.ParseServiceKind(s.Type)
		if kindErr != nil {
			return nil, kindErr
		}
		price, priceErr := kernel.NewMoney(s.AssignedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewServiceOrdered(serviceID, serviceKind, s.Name, price, s.Done)
		if lineErr != nil {
			return nil, lineErr
		}
		services = append(services, line)
	}

	events := make([]order.Event, 0, len(dto.Events))
	for _, e := range dto.Events {
		eventKind, kindErr := order.ParseEventKind(e.Type)
		if kindErr != nil {
			return nil, kindErr
		}
		eventStatus, statusErr := order.ParseStatus(e.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		events = append(events, order.Event{Kind: eventKind, Time: e.Time, Status: eventStatus})
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

func imagesToDomain(dtos []fileDTO) []order.Image {
	images := make([]order.Image, 0, len(dtos))
	for _, dto := range dtos {
		images = append(images, order.Image{ID: dto.ID, ContentType: dto.Type, URL: dto.URL})
	}
	return images
}

func ordererToDomain(dto userDTO) (request.Orderer, error) {
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

func storeToDomain(dto storeDTO) (request.Store, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return request.Store{}, err
	}
	return request.Store{ID: id, Name: dto.Name}, nil
}

// layoutToDomain fails with locker.ErrIncompleteLayout when the remote did not
// report the locker of the opened unit together with its units.
func layoutToDomain(dto *lockerUnitDTO) (locker.Layout, error) {
	if dto == nil || dto.Locker == nil || dto.Locker.Units == nil {
		return locker.Layout{}, locker.ErrIncompleteLayout
	}

	units := make([]locker.Unit, 0, len(dto.Locker.Units))
	for _, u := range dto.Locker.Units {
		unitID, err := kernel.NewID(u.ID)
		if err != nil {
			return locker.Layout{}, err
		}
		cell, err := locker.NewCell(u.Row, u.Column)
		if err != nil {
			return locker.Layout{}, err
		}
		unit, err := locker.NewUnit(unitID, u.Number, cell)
		if err != nil {
			return locker.Layout{}, err
		}
		units = append(units, unit)
	}

	lockerID, err := kernel.NewID(dto.Locker.ID)
	if err != nil {
		return locker.Layout{}, err
	}
	l, err := locker.NewLocker(lockerID, dto.Locker.Name, dto.Locker.Rows, dto.Locker.Columns, units)
	if err != nil {
		return locker.Layout{}, err
	}

	unitID, err := kernel.NewID(dto.ID)
	if err != nil {
		return locker.Layout{}, err
	}
	return locker.NewLayout(unitID, l)
}

func priceToDomain(dto priceDTO) (catalog.PriceRule, error) {
	kind, err := catalog.ParsePriceKind(dto.Type)
	if err != nil {
		return catalog.PriceRule{}, err
	}
	if kind == catalog.Variable {
		return catalog.VariablePrice(), nil
	}
	amount := decimal.Zero
	if dto.Amount != nil {
		amount = *dto.Amount
	}
	money, err := kernel.NewMoney(amount)
	if err != nil {
		return catalog.PriceRule{}, err
	}
	return catalog.FixedPrice(money), nil
}

func serviceToDomain(dto serviceDTO) (catalog.Service, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return catalog.Service{}, err
	}
	kind, err := order.ParseServiceKind(dto.Type)
	if err != nil {
		return catalog.Service{}, err
	}
	price, err := priceToDomain(dto.Price)
	if err != nil {
		return catalog.Service{}, err
	}
	exclude := make([]kernel.ID, 0, len(dto.Exclude))
	for _, e := range dto.Exclude {
		excluded, idErr := kernel.NewID(e.ID)
		if idErr != nil {
			return catalog.Service{}, idErr
		}
		exclude = append(exclude, excluded)
	}
	return catalog.NewService(id, kind, dto.Name, price, dto.Icon, exclude)
}

func productToDomain(dto productDTO) (catalog.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return catalog.Product{}, err
	}
	price, err := priceToDomain(dto.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(id, dto.Name, price)
}

type customerDTO struct {
	userDTO
	Employee string `json:"employee"`
}

type branchDTO struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Address            string `json:"address"`
	MobileNumber       string `json:"mobileNumber"`
	Email              string `json:"email"`
}

type balanceDTO struct {
	Cash           decimal.Decimal `json:"cash"`
	Bank           decimal.Decimal `json:"bank"`
	PaymentGateway decimal.Decimal `json:"paymentGateway"`
}

type entryDTO struct {
	Type   string          `json:"type"`
	Detail string          `json:"detail"`
	Time   time.Time       `json:"time"`
	Amount decimal.Decimal `json:"amount"`
}

type branchDetailDTO struct {
	branchDTO
	Balance      balanceDTO `json:"balance"`
	Transactions []entryDTO `json:"transactions"`
}

func customerToDomain(dto customerDTO) (customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return customer.Customer{}, err
	}
	return customer.Customer{
		ID:           id,
		DisplayName:  dto.DisplayName,
		MobileNumber: dto.MobileNumber,
		Email:        dto.Email,
		Address:      dto.Address,
		Role:         customer.ParseRole(dto.Employee),
	}, nil
}

func branchToDomain(dto branchDTO) (store.Store, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return store.Store{}, err
	}
	return store.Store{
		ID:                 id,
		Name:               dto.Name,
		RegistrationNumber: dto.RegistrationNumber,
		Address:            dto.Address,
		MobileNumber:       dto.MobileNumber,
		Email:              dto.Email,
	}, nil
}

func branchDetailToDomain(dto branchDetailDTO) (store.Detail, error) {
	s, err := branchToDomain(dto.branchDTO)
	if err != nil {
		return store.Detail{}, err
	}

	var balances store.Balances
	if balances.Cash, err = kernel.NewMoney(dto.Balance.Cash); err != nil {
		return store.Detail{}, err
	}
	if balances.Bank, err = kernel.NewMoney(dto.Balance.Bank); err != nil {
		return store.Detail{}, err
	}
	if balances.PaymentGateway, err = kernel.NewMoney(dto.Balance.PaymentGateway); err != nil {
		return store.Detail{}, err
	}

	entries := make([]store.Entry, 0, len(dto.Transactions))
	for _, t := range dto.Transactions {
		// Expenses may be reported as negative amounts.
		amount, err := kernel.NewMoney(t.Amount.Abs())
		if err != nil {
			return store.Detail{}, err
		}
		entries = append(entries, store.Entry{
			Kind:   store.ParseEntryKind(t.Type),
			Detail: t.Detail,
			Time:   t.Time,
			Amount: amount,
		})
	}
	return store.Detail{Store: s, Balances: balances, Entries: entries}, nil
}
