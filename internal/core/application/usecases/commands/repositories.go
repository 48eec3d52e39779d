// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrowest unit of work it needs, so tests
// mock exactly the repositories a command touches and nothing more.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ReportRepoFactory provides access to the report repository within a transaction.
	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	// PostRepoFactory provides access to the post repository within a transaction.
	PostRepoFactory interface {
		PostRepository() ports.PostRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogOrderUoW manages transactions that attach catalog items to orders.
	// The item write and the amount recompute share one transaction.
	CatalogOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// CatalogOrderUoWFactory creates new catalog+order unit of work instances.
	CatalogOrderUoWFactory interface {
		Create() CatalogOrderUoW
	}

	// PaymentUoW manages transactions for payment confirmation, which flips
	// the order and creates the initial delivery record together.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DispatchUoW manages transactions for driver assignment, coordinating
	// order, driver, and assignment repositories.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		AssignmentRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// AcceptanceUoW manages transactions for assignment acceptance, which
	// resolves the assignment and advances the delivery atomically.
	AcceptanceUoW interface {
		TxManager
		AssignmentRepoFactory
		DeliveryRepoFactory
	}

	// AcceptanceUoWFactory creates new acceptance unit of work instances.
	AcceptanceUoWFactory interface {
		Create() AcceptanceUoW
	}

	// AssignmentUoW manages transactions for assignment-only operations.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ShippingUoW manages transactions for delivery progress operations that
	// also move the order lifecycle (pickup, completion).
	ShippingUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
	}

	// ShippingUoWFactory creates new shipping unit of work instances.
	ShippingUoWFactory interface {
		Create() ShippingUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReportUoW manages transactions for report submission, which inserts the
	// report and applies the consequence to the target in one atomic unit.
	ReportUoW interface {
		TxManager
		ReportRepoFactory
		OrderRepoFactory
		PostRepoFactory
	}

	// ReportUoWFactory creates new report unit of work instances.
	ReportUoWFactory interface {
		Create() ReportUoW
	}
)
