package executor_factory

import (
	"context"

	"github.com/lexora/lexora-backend/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

type DbExecutorFactory struct {
	getter repositories.ExecutorGetter
}

func NewDbExecutorFactory(getter repositories.ExecutorGetter) DbExecutorFactory {
	return DbExecutorFactory{getter: getter}
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.getter.NewExecutor()
}

func (factory DbExecutorFactory) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return factory.getter.Transaction(ctx, fn)
}

// TransactionReturnValue runs fn in a transaction and returns its value,
// discarding it when the transaction rolls back.
func TransactionReturnValue[T any](
	ctx context.Context,
	factory ExecutorFactory,
	fn func(tx repositories.Transaction) (T, error),
) (T, error) {
	var value T
	err := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, err
}
