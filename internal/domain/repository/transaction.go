package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the usecase layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so that order, payment, shipping and financial writes commit
// or roll back as one unit.
type RepositoryFactory interface {
	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewPaymentRepository returns a PaymentRepository bound to the current transaction.
	NewPaymentRepository() PaymentRepository

	// NewShippingRepository returns a ShippingRepository bound to the current transaction.
	NewShippingRepository() ShippingRepository

	// NewFinancialRepository returns a FinancialRepository bound to the current transaction.
	NewFinancialRepository() FinancialRepository
}
