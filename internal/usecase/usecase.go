package usecase

import (
	"context"
	"time"

	"entity-registry/internal/entities"
	"entity-registry/internal/repository"
	"entity-registry/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	AccountUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	factory *entities.Factory,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, factory, timeout)
}
