// Package store holds a branch's cash-flow: its balances per account and the
// profit and expense entries that moved them.
//
// Operators record money entering a balance (Inflow), leaving it (Outflow) or
// moving between two balances (Transfer). The remote keeps the ledger; the
// dashboard only checks that an outgoing amount is covered by the source
// balance it last read, see Detail.CanFund.
package store
