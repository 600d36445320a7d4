// Package review holds customer ratings of menu items.
//
// A customer may review an item only from one of their delivered orders that
// contains it, and only once per (customer, order, item).
package review
