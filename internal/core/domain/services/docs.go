// Package services contains domain services that coordinate logic spanning
// multiple aggregates. The DriverSelector policy picks a driver for an order
// without committing either aggregate to a persistence concern.
package services
