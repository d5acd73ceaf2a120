package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewVisitRepository returns a VisitRepository instance bound to the current transaction.
	NewVisitRepository() VisitRepository

	// NewScheduleRepository returns a ScheduleRepository instance bound to the current transaction.
	NewScheduleRepository() ScheduleRepository

	// NewNotificationRepository returns a NotificationRepository instance bound to the current transaction.
	NewNotificationRepository() NotificationRepository

	// NewSubscriptionRepository returns a SubscriptionRepository instance bound to the current transaction.
	NewSubscriptionRepository() SubscriptionRepository

	// NewDeviceRepository returns a DeviceRepository instance bound to the current transaction.
	NewDeviceRepository() DeviceRepository

	// NewPasswordResetRepository returns a PasswordResetRepository instance bound to the current transaction.
	NewPasswordResetRepository() PasswordResetRepository
}
