package domain

import (
	"context"
	"sync"
	"time"

	"entity-registry/internal/entities"
	"entity-registry/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	factory *entities.Factory
	timeout time.Duration

	// serialises read-modify-write of balances
	balanceMu sync.Mutex
}

// New constructs a new usecase layer with its dependencies. A nil factory
// gets a fresh one.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	factory *entities.Factory,
	timeout time.Duration,
) *Usecase {
	if factory == nil {
		factory = entities.NewFactory()
	}
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		factory: factory,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
