// Package order holds the Order aggregate and its fulfilment state machine.
//
// An order is created pending with line items priced from the catalog, so its
// total is always the sum of unit price times quantity captured at creation.
// It then moves forward only:
//
//	pending ──> preparing ──> onTheWay ──> delivered
//	   └──────────────────────────^
//	          (claimed or assigned straight from pending)
//
// A courier is attached exactly when the order is dispatched and stays attached
// once delivered. Administrative overrides are available through OverrideStatus
// but can never detach a courier or touch a delivered order.
package order
