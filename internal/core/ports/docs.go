// Package ports declares the contracts between the application core and its
// adapters: repositories, the unit of work, and the read-only catalog.
//
// Writes of orders and couriers are conditional on the version the aggregate
// was loaded with. A repository that finds a different stored version returns
// errs.VersionIsInvalidError with ParamName "order" or "courier".
package ports
