// Package order provides the Order aggregate root of the fulfillment
// lifecycle, together with its line items, shipping address, and status
// state machine.
//
// Key business rules:
//   - The order amount is derived, never client-supplied: it always equals
//     the sum of item subtotals and is recomputed by a full re-scan on every
//     item append.
//   - An item's price is a snapshot of the catalog sale price at creation
//     time and never changes afterwards.
//   - Payment confirmation is applied exactly once and moves the order from
//     NotProcessed to Processed.
//   - Orders are soft-deleted: exhausting the durability points counter via
//     reports flips the availability flag instead of deleting rows.
package order
