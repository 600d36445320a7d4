// Package kernel holds the value objects shared by every aggregate:
//   - UUID: entity identifiers
//   - Money: non-negative amounts with two decimal places
//   - Actor and Role: the verified caller identity handed to the core
//
// All of them are immutable and safe for concurrent use.
package kernel
