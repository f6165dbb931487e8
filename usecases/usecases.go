package usecases

import (
	"github.com/lexora/lexora-backend/repositories"
	"github.com/lexora/lexora-backend/usecases/executor_factory"
)

type Repositories struct {
	ExecutorGetter     repositories.ExecutorGetter
	LexoraDbRepository *repositories.LexoraDbRepository
}

type Usecases struct {
	Repositories
}

func NewUsecases(repos Repositories) Usecases {
	return Usecases{Repositories: repos}
}

func (usecases Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases Usecases) NewCaseUseCase() *CaseUseCase {
	return &CaseUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.LexoraDbRepository,
	}
}

func (usecases Usecases) NewCaseWorkflowUseCase() *CaseWorkflowUseCase {
	return &CaseWorkflowUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.LexoraDbRepository,
	}
}
