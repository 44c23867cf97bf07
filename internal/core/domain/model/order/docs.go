// Package order provides the Order aggregate of the order service: an order
// header and the line items it owns, plus the Status enumeration.
//
// The package includes:
//   - Order: the aggregate root (customer, status, address, price, items)
//   - Item: a product line owned by exactly one order
//   - Status: the ordinal-encoded lifecycle stage with a total decoder
//
// Key business rules:
//   - Order identifiers are generated by storage and immutable afterwards
//   - Item quantity is positive and prices are never negative
//   - Unknown stored status codes decode to Cancelled
package order
