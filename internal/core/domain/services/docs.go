// Package services holds domain logic spanning the Order and Courier aggregates.
//
// DeliveryAssigner binds a courier to an order and releases it again. It only
// mutates the two in-memory aggregates; callers persist both in one unit of
// work with version-conditional writes so that concurrent claims on the same
// order or by the same courier cannot both commit.
package services
