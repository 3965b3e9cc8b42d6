package graphql_test

import (
	"net/http"
	"testing"
	"time"

	"dashboard/internal/core/domain/model/customer"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/store"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_DisplayStores(t *testing.T) {
	server, captured := newBackend(t, http.StatusOK, `{"data":{"displayStores":[
		{"id":"store_1","name":"Bangsar","registrationNumber":"2020-01","address":"Jalan Telawi","mobileNumber":"+60123456789","email":"bangsar@shop.my"}
	]}}`)
	gw := newGateway(t, server.URL, staticSession{token: "t"})

	stores, err := gw.DisplayStores(t.Context())

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "store_1", stores[0].ID.String())
	assert.Equal(t, "2020-01", stores[0].RegistrationNumber)
	assert.Contains(t, captured.document, "displayStores {")
}

func TestGateway_DisplayStore(t *testing.T) {
	server, captured := newBackend(t, http.StatusOK, `{"data":{"displayStores":[{
		"id":"store_1","name":"Bangsar",
		"balance":{"cash":120.5,"bank":3000,"paymentGateway":0},
		"transactions":[
			{"type":"profit","detail":"Request req_1","time":"2024-03-01T10:00:00Z","amount":80},
			{"type":"expense","detail":"Detergent","time":"2024-03-02T10:00:00Z","amount":-25.5}
		]
	}]}}`)
	gw := newGateway(t, server.URL, staticSession{token: "t"})
	after := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	d, err := gw.DisplayStore(t.Context(), kernel.MustNewID("store_1"), after, before)

	require.NoError(t, err)
	assert.Contains(t, captured.document, `displayStores(storeId:"store_1")`)
	assert.Contains(t, captured.document, `transactions(after:"2023-11-01T00:00:00Z",before:"2024-03-15T00:00:00Z")`)
	assert.Equal(t, "120.50", d.Balances.Cash.String())
	assert.Equal(t, "3000.00", d.Balances.Bank.String())
	require.Len(t, d.Entries, 2)
	assert.Equal(t, store.Expense, d.Entries[1].Kind)
	assert.Equal(t, "25.50", d.Entries[1].Amount.String())
}

func TestGateway_DisplayStore_NotFound(t *testing.T) {
	server, _ := newBackend(t, http.StatusOK, `{"data":{"displayStores":[]}}`)
	gw := newGateway(t, server.URL, staticSession{token: "t"})

	_, err := gw.DisplayStore(t.Context(), kernel.MustNewID("store_9"), time.Now(), time.Now())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGateway_AddTransaction(t *testing.T) {
	from := store.Target{StoreID: kernel.MustNewID("store_1"), Balance: store.Bank}
	to := store.Target{StoreID: kernel.MustNewID("store_2"), Balance: store.PaymentGateway}

	t.Run("should upload attachments as a variable", func(t *testing.T) {
		server, captured := newBackend(t, http.StatusOK, `{"data":{"addTransaction":true}}`)
		gw := newGateway(t, server.URL, staticSession{token: "t"})
		tx, err := store.NewTransfer(from, to, kernel.MustMoney("150.5"), "Float", nil)
		require.NoError(t, err)

		err = gw.AddTransaction(t.Context(), tx, []ports.File{{Name: "slip.jpg", ContentType: "image/jpeg", Data: []byte("S")}})

		require.NoError(t, err)
		assert.Contains(t, captured.document, "mutation AddTransaction($attachments: [Upload!]!)")
		assert.Contains(t, captured.document, `addTransaction(transaction:"transfer",amount:150.5,remark:"Float",attachments:$attachments,`+
			`from:{storeId:"store_1",balance:"bank"},to:{storeId:"store_2",balance:"payment-gateway"})`)
		assert.Equal(t, []string{"slip.jpg:S"}, captured.files["attachments"])
	})

	t.Run("should send an empty list and a backdated time", func(t *testing.T) {
		server, captured := newBackend(t, http.StatusOK, `{"data":{"addTransaction":true}}`)
		gw := newGateway(t, server.URL, staticSession{token: "t"})
		at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		tx, err := store.NewInflow(to, kernel.MustMoney("20"), "", &at)
		require.NoError(t, err)

		err = gw.AddTransaction(t.Context(), tx, nil)

		require.NoError(t, err)
		assert.Contains(t, captured.document, `addTransaction(transaction:"inflow",amount:20,remark:"",attachments:[],`+
			`time:"2024-03-01T09:00:00Z",to:{storeId:"store_2",balance:"payment-gateway"})`)
		assert.Empty(t, captured.files)
	})
}

func TestGateway_Customers(t *testing.T) {
	t.Run("should list customers with their role", func(t *testing.T) {
		server, _ := newBackend(t, http.StatusOK, `{"data":{"displayUsers":[
			{"id":"usr_1","displayName":"Aina","mobileNumber":"+60123456789","email":"aina@example.com","employee":null},
			{"id":"usr_2","displayName":"Brian","mobileNumber":"+60198765432","email":"brian@shop.my","employee":"staff"}
		]}}`)
		gw := newGateway(t, server.URL, staticSession{token: "t"})

		customers, err := gw.DisplayUsers(t.Context())

		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, customer.NoRole, customers[0].Role)
		assert.Equal(t, customer.Staff, customers[1].Role)
	})

	t.Run("should add a customer without an address", func(t *testing.T) {
		server, captured := newBackend(t, http.StatusOK, `{"data":{"addUser":
			{"id":"usr_3","displayName":"Chen","mobileNumber":"+60123456789","email":"chen@example.com","address":null,"employee":null}
		}}`)
		gw := newGateway(t, server.URL, staticSession{token: "t"})
		profile, err := customer.NewProfile("Chen", "0123456789", "chen@example.com", "")
		require.NoError(t, err)

		c, err := gw.AddUser(t.Context(), profile)

		require.NoError(t, err)
		assert.Equal(t, "usr_3", c.ID.String())
		assert.Contains(t, captured.document,
			`addUser(displayName:"Chen",mobileNumber:"+60123456789",email:"chen@example.com") {`)
	})
}
