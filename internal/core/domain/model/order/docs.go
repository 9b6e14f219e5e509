// Package order contains the Order aggregate: the tab opened for one table,
// its item lines, and the state machines governing both.
//
// The aggregate root (Order) is the only entry point for mutations. Item
// status changes and total-amount maintenance always happen together through
// the root, so an order at rest never reports a total that disagrees with its
// active item lines. The one deliberate exception is a cancelled order, whose
// total stays frozen at its last active value for historical display.
//
// Status (order) and ItemStatus (item line) are value objects implementing
// the transition rules; illegal transitions surface as conflict errors from
// the errs package.
package order
