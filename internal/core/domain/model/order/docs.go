// Package order holds the fulfillment state machine of a single order.
//
// An order is either dropped off at the store (Physical) or deposited into a
// locker unit (Locker). The type selects the status sequence, and at every
// point the order offers at most one Action, see NextAction. The remote API
// is the source of truth: the dashboard restores orders from its snapshots
// with RestoreOrder, validates the offered action, sends the mutation and
// then refetches.
//
// Key rules:
//   - statuses move forward one step at a time, locker orders may also be
//     cancelled while the locker is open
//   - undo is only possible when the event log has more than one entry
//   - services can be edited until the garment is cleaned
package order
