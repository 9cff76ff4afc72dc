// Package order implements the Order aggregate and its lifecycle state machine.
//
// An order is created from a cart snapshot at checkout and afterwards only
// changes by status transitions:
//
//	pending ──> confirmed ──> preparing ──> out-for-delivery ──> delivered
//	   │            │  └─────────────────────────^    ^
//	   │            └─────────────(auto-insert)───────┘
//	   └──────────────┴──────────────┴────────────────┴──> cancelled
//
// delivered and cancelled are terminal. Every transition appends to the
// StatusHistory, an append-only log that always starts with pending and only
// ever records edges of the graph above. Items, delivery address and pricing
// are frozen at creation; pricing.total is never recomputed.
package order
