package graphql

import (
	"context"
	"time"

	"dashboard/internal/core/domain/model/catalog"
	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/model/store"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

var (
	_ ports.Gateway         = (*Gateway)(nil)
	_ ports.StoreGateway    = (*Gateway)(nil)
	_ ports.CustomerGateway = (*Gateway)(nil)
)

// Gateway implements the remote API ports on top of Client.
type Gateway struct {
	client *Client
}

func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) DisplayRequests(ctx context.Context) ([]request.Summary, error) {
	doc := query("displayRequests", Arguments{{Name: "everyone", Value: true}},
		requestSummaryFields+"\n\t\torders {"+orderSummaryFields+"\n\t\t}")

	var out struct {
		DisplayRequests []requestSummaryDTO `json:"displayRequests"`
	}
	if err := g.client.Do(ctx, "displayRequests", doc, nil, &out); err != nil {
		return nil, err
	}

	summaries := make([]request.Summary, 0, len(out.DisplayRequests))
	for _, dto := range out.DisplayRequests {
		s, err := summaryToDomain(dto)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (g *Gateway) DisplayRequest(ctx context.Context, id kernel.ID) (*request.Request, error) {
	doc := query("displayRequests",
		Arguments{{Name: "requestId", Value: id}, {Name: "everyone", Value: true}},
		requestDetailFields+"\n\t\torders {"+orderDetailFields+"\n\t\t}")

	var out struct {
		DisplayRequests []requestDTO `json:"displayRequests"`
	}
	if err := g.client.Do(ctx, "displayRequest", doc, nil, &out); err != nil {
		return nil, err
	}
	if len(out.DisplayRequests) == 0 {
		return nil, errs.NewObjectNotFoundError("requestId", id.String())
	}
	return requestToDomain(out.DisplayRequests[0])
}

func (g *Gateway) AddRequest(ctx context.Context, input ports.NewRequestInput) (kernel.ID, error) {
	orders := make([]Arguments, 0, len(input.Orders))
	for _, o := range input.Orders {
		orders = append(orders, Arguments{
			{Name: "name", Value: o.Name},
			{Name: "services", Value: serviceArguments(o.Services)},
		})
	}

	doc := mutation("addRequest", Arguments{
		{Name: "storeId", Value: input.StoreID},
		{Name: "ordererId", Value: input.OrdererID},
		{Name: "orders", Value: orders},
		{Name: "products", Value: productArguments(input.Products)},
	}, "\n\t\tid")

	var out struct {
		AddRequest idDTO `json:"addRequest"`
	}
	if err := g.client.Do(ctx, "addRequest", doc, nil, &out); err != nil {
		return kernel.ID{}, err
	}
	return kernel.NewID(out.AddRequest.ID)
}

func (g *Gateway) CancelRequest(ctx context.Context, id kernel.ID) error {
	return g.requestMutation(ctx, "cancelRequest", id)
}

func (g *Gateway) AddRequestPayment(ctx context.Context, id kernel.ID, payment request.Payment) error {
	var reference any
	if payment.Reference() != "" {
		reference = payment.Reference()
	}
	var at any
	if !payment.Time().IsZero() {
		at = payment.Time()
	}
	return g.requestMutation(ctx, "addRequestPayment", id, Argument{Name: "payment", Value: Arguments{
		{Name: "type", Value: payment.Type()},
		{Name: "amount", Value: payment.Amount()},
		{Name: "reference", Value: reference},
		{Name: "time", Value: at},
	}})
}

func (g *Gateway) UpdateRequestProducts(ctx context.Context, id kernel.ID, products []ports.ProductInput) error {
	return g.requestMutation(ctx, "updateRequestProducts", id,
		Argument{Name: "products", Value: productArguments(products)})
}

func (g *Gateway) AddRequestPickUpTime(ctx context.Context, id kernel.ID, at time.Time) error {
	return g.requestMutation(ctx, "addRequestPickUpTime", id, Argument{Name: "time", Value: at})
}

func (g *Gateway) UpdateRequestRemark(ctx context.Context, id kernel.ID, remark string) error {
	return g.requestMutation(ctx, "updateRequestRemark", id, Argument{Name: "remark", Value: remark})
}

func (g *Gateway) SendEmail(ctx context.Context, email ports.Email) error {
	var uploads Uploads
	if len(email.Attachments) > 0 {
		uploads = Uploads{"attachments": email.Attachments}
	}
	doc := uploadMutation("SendEmail", "$attachments: [Upload!]", "sendEmail", Arguments{
		{Name: "to", Value: email.To},
		{Name: "subject", Value: email.Subject},
		{Name: "text", Value: email.Text},
		{Name: "attachments", Value: Variable("attachments")},
	}, "")
	return g.client.Do(ctx, "sendEmail", doc, uploads, nil)
}

func (g *Gateway) RequestRetrieveStore(ctx context.Context, orderID kernel.ID) (locker.Layout, error) {
	doc := mutation("requestRetrieveStore", Arguments{{Name: "orderId", Value: orderID}},
		"\n\t\tid\n\t\tlockerUnitOpened {"+lockerUnitFields+"\n\t\t}")

	var out struct {
		RequestRetrieveStore struct {
			LockerUnitOpened *lockerUnitDTO `json:"lockerUnitOpened"`
		} `json:"requestRetrieveStore"`
	}
	if err := g.client.Do(ctx, "requestRetrieveStore", doc, nil, &out); err != nil {
		return locker.Layout{}, err
	}
	return layoutToDomain(out.RequestRetrieveStore.LockerUnitOpened)
}

func (g *Gateway) DeliverBackLocker(ctx context.Context, orderID kernel.ID) (locker.Layout, error) {
	doc := mutation("deliverBackLocker", Arguments{{Name: "orderId", Value: orderID}},
		"\n\t\tid\n\t\tlockerUnitDelivered {"+lockerUnitFields+"\n\t\t}")

	var out struct {
		DeliverBackLocker struct {
			LockerUnitDelivered *lockerUnitDTO `json:"lockerUnitDelivered"`
		} `json:"deliverBackLocker"`
	}
	if err := g.client.Do(ctx, "deliverBackLocker", doc, nil, &out); err != nil {
		return locker.Layout{}, err
	}
	return layoutToDomain(out.DeliverBackLocker.LockerUnitDelivered)
}

func (g *Gateway) ConfirmCloseLocker(ctx context.Context, lockerUnitID kernel.ID) error {
	doc := mutation("confirmCloseLocker", Arguments{{Name: "lockerUnitId", Value: lockerUnitID}}, "")
	return g.client.Do(ctx, "confirmCloseLocker", doc, nil, nil)
}

func (g *Gateway) AddBeforeImages(ctx context.Context, orderID kernel.ID, images []ports.File) error {
	return g.imagesMutation(ctx, "AddBeforeImages", "addBeforeImages", "imagesBefore", orderID, images)
}

func (g *Gateway) AddAfterImages(ctx context.Context, orderID kernel.ID, images []ports.File) error {
	return g.imagesMutation(ctx, "AddAfterImages", "addAfterImages", "imagesAfter", orderID, images)
}

func (g *Gateway) UpdateServiceStatus(ctx context.Context, orderID kernel.ID, servicesDone []kernel.ID) error {
	return g.orderMutation(ctx, "updateServiceStatus", orderID,
		Argument{Name: "servicesDone", Value: kernel.Strings(servicesDone)})
}

func (g *Gateway) ConfirmRetrieve(ctx context.Context, orderID kernel.ID) error {
	return g.orderMutation(ctx, "confirmRetrieve", orderID)
}

func (g *Gateway) UndoOrder(ctx context.Context, orderID kernel.ID) error {
	return g.orderMutation(ctx, "undoOrder", orderID)
}

func (g *Gateway) UpdateOrderServices(ctx context.Context, orderID kernel.ID, services []ports.ServiceInput) error {
	return g.orderMutation(ctx, "updateOrderServices", orderID,
		Argument{Name: "services", Value: serviceArguments(services)})
}

func (g *Gateway) DisplayServices(ctx context.Context) ([]catalog.Service, error) {
	doc := query("displayServices", nil, `
		id
		type
		name`+catalogPriceFields+`
		icon
		exclude {
			id
		}`)

	var out struct {
		DisplayServices []serviceDTO `json:"displayServices"`
	}
	if err := g.client.Do(ctx, "displayServices", doc, nil, &out); err != nil {
		return nil, err
	}

	services := make([]catalog.Service, 0, len(out.DisplayServices))
	for _, dto := range out.DisplayServices {
		s, err := serviceToDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, nil
}

func (g *Gateway) DisplayProducts(ctx context.Context) ([]catalog.Product, error) {
	doc := query("displayProducts", nil, `
		id
		name`+catalogPriceFields)

	var out struct {
		DisplayProducts []productDTO `json:"displayProducts"`
	}
	if err := g.client.Do(ctx, "displayProducts", doc, nil, &out); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(out.DisplayProducts))
	for _, dto := range out.DisplayProducts {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (g *Gateway) DisplayStores(ctx context.Context) ([]store.Store, error) {
	doc := query("displayStores", nil, branchFields)

	var out struct {
		DisplayStores []branchDTO `json:"displayStores"`
	}
	if err := g.client.Do(ctx, "displayStores", doc, nil, &out); err != nil {
		return nil, err
	}

	stores := make([]store.Store, 0, len(out.DisplayStores))
	for _, dto := range out.DisplayStores {
		s, err := branchToDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, nil
}

func (g *Gateway) DisplayStore(ctx context.Context, id kernel.ID, after, before time.Time) (store.Detail, error) {
	doc := query("displayStores", Arguments{{Name: "storeId", Value: id}}, branchFields+`
		balance {
			cash
			bank
			paymentGateway
		}
		transactions(`+Arguments{{Name: "after", Value: after}, {Name: "before", Value: before}}.String()+`) {
			type
			detail
			time
			amount
		}`)

	var out struct {
		DisplayStores []branchDetailDTO `json:"displayStores"`
	}
	if err := g.client.Do(ctx, "displayStore", doc, nil, &out); err != nil {
		return store.Detail{}, err
	}
	if len(out.DisplayStores) == 0 {
		return store.Detail{}, errs.NewObjectNotFoundError("storeId", id.String())
	}
	return branchDetailToDomain(out.DisplayStores[0])
}

// AddTransaction sends an empty list when there is nothing to attach.
func (g *Gateway) AddTransaction(ctx context.Context, t store.Transaction, attachments []ports.File) error {
	var (
		uploads Uploads
		files   any = []string{}
	)
	if len(attachments) > 0 {
		uploads = Uploads{"attachments": attachments}
		files = Variable("attachments")
	}

	var at any
	if ts, ok := t.Time(); ok {
		at = ts
	}
	doc := uploadMutation("AddTransaction", "$attachments: [Upload!]!", "addTransaction", Arguments{
		{Name: "transaction", Value: t.Kind()},
		{Name: "amount", Value: t.Amount()},
		{Name: "remark", Value: t.Remark()},
		{Name: "attachments", Value: files},
		{Name: "time", Value: at},
		{Name: "from", Value: targetArguments(t.From())},
		{Name: "to", Value: targetArguments(t.To())},
	}, "")
	return g.client.Do(ctx, "addTransaction", doc, uploads, nil)
}

func (g *Gateway) DisplayUsers(ctx context.Context) ([]customer.Customer, error) {
	doc := query("displayUsers", nil, customerFields)

	var out struct {
		DisplayUsers []customerDTO `json:"displayUsers"`
	}
	if err := g.client.Do(ctx, "displayUsers", doc, nil, &out); err != nil {
		return nil, err
	}

	customers := make([]customer.Customer, 0, len(out.DisplayUsers))
	for _, dto := range out.DisplayUsers {
		c, err := customerToDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (g *Gateway) AddUser(ctx context.Context, profile customer.Profile) (customer.Customer, error) {
	var address any
	if profile.Address != "" {
		address = profile.Address
	}
	doc := mutation("addUser", Arguments{
		{Name: "displayName", Value: profile.DisplayName},
		{Name: "mobileNumber", Value: profile.MobileNumber},
		{Name: "email", Value: profile.Email},
		{Name: "address", Value: address},
	}, customerFields)

	var out struct {
		AddUser customerDTO `json:"addUser"`
	}
	if err := g.client.Do(ctx, "addUser", doc, nil, &out); err != nil {
		return customer.Customer{}, err
	}
	return customerToDomain(out.AddUser)
}

func (g *Gateway) requestMutation(ctx context.Context, field string, id kernel.ID, extra ...Argument) error {
	args := append(Arguments{{Name: "requestId", Value: id}}, extra...)
	return g.client.Do(ctx, field, mutation(field, args, "\n\t\tid"), nil, nil)
}

func (g *Gateway) orderMutation(ctx context.Context, field string, id kernel.ID, extra ...Argument) error {
	args := append(Arguments{{Name: "orderId", Value: id}}, extra...)
	return g.client.Do(ctx, field, mutation(field, args, "\n\t\tid"), nil, nil)
}

func (g *Gateway) imagesMutation(
	ctx context.Context, name, field, variable string, orderID kernel.ID, images []ports.File,
) error {
	doc := uploadMutation(name, "$"+variable+": [Upload!]!", field, Arguments{
		{Name: "orderId", Value: orderID},
		{Name: variable, Value: Variable(variable)},
	}, "\n\t\tid")
	return g.client.Do(ctx, field, doc, Uploads{variable: images}, nil)
}

// serviceArguments sends the resolved price of every line.
func serviceArguments(services []ports.ServiceInput) []Arguments {
	args := make([]Arguments, 0, len(services))
	for _, s := range services {
		args = append(args, Arguments{
			{Name: "id", Value: s.ID},
			{Name: "price", Value: s.Price},
		})
	}
	return args
}

func productArguments(products []ports.ProductInput) []Arguments {
	args := make([]Arguments, 0, len(products))
	for _, p := range products {
		args = append(args, Arguments{
			{Name: "id", Value: p.ID},
			{Name: "quantity", Value: p.Quantity},
			{Name: "price", Value: p.Price},
		})
	}
	return args
}

// targetArguments renders a transaction side, nil when the side is absent.
func targetArguments(target store.Target, ok bool) Arguments {
	if !ok {
		return nil
	}
	return Arguments{
		{Name: "storeId", Value: target.StoreID},
		{Name: "balance", Value: target.Balance},
	}
}
