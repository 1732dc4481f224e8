// Package mocks provides hand-written mock implementations of the store
// interfaces for handler and router tests.
package mocks
