package contracts

import (
	"context"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/dto/responses"
)

type ResourceUsecase interface {
	ListResources(ctx context.Context, category string) ([]responses.Resource, error)
	FindResourceBySlug(ctx context.Context, slug string) (*responses.Resource, error)
}

type ResourceRepository interface {
	FindResources(ctx context.Context, category string) ([]models.Resource, error)
	FindResourceBySlug(ctx context.Context, slug string) (*models.Resource, error)
}
