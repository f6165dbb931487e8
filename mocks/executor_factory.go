package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lexora/lexora-backend/repositories"
)

type ExecutorFactory struct {
	mock.Mock
	ExecMock *Executor
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	f.Called()
	return f.ExecMock
}

func (f *ExecutorFactory) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	args := f.Called(ctx, fn)
	if err := fn(f.ExecMock); err != nil {
		return err
	}
	return args.Error(0)
}
