// Package request holds the orders request aggregate: a customer's visit with
// its orders, products, payments and invoice. Once cancelled a request can no
// longer be changed.
package request
