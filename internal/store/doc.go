// Package store defines the persistence interfaces the API depends on,
// along with the sentinel errors implementations must return. Concrete
// implementations live in internal/platform/postgres.
package store
