// Package courier holds the Courier aggregate.
//
// A courier is either available or busy with exactly one order. Claim and
// Release are the only ways to change that, and they are always persisted in
// the same unit of work as the matching change to the order, so the courier's
// current order and the order's courier never disagree.
package courier
