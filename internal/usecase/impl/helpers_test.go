package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vms/internal/domain/repository"
	mockRepo "vms/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPassthroughTxManager builds a transaction manager mock that invokes the
// given function with the supplied factory and propagates its error.
func newPassthroughTxManager(t *testing.T, factory *mockRepo.MockRepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
