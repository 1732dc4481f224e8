// Package postgres implements the store interfaces against PostgreSQL
// using pgx. All statements are parameterized; database errors are
// translated into store sentinels by MapError so callers never branch on
// driver details.
package postgres
