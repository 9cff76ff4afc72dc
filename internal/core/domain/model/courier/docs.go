// Package courier models the delivery profile of a courier: employment status,
// availability and rolling delivery statistics.
//
// Availability is driven by the order lifecycle: accepting an order makes a
// courier busy, delivering it makes them available again. Couriers switch
// between available and offline themselves; busy is never set by hand.
package courier
