// Package store defines the persistence interfaces and errors used by the
// service layer. Concrete implementations live under internal/platform.
package store
