package resources

import (
	"context"
	"fmt"
	"sync"
	"time"
	"waitingwell-service/internal/app/config"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/dto/responses"
	"waitingwell-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type resourceUsecase struct {
	ResourceRepository contracts.ResourceRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	resourceUsecaseInstance contracts.ResourceUsecase
	onceResourceUsecase     sync.Once
)

func NewResourceUsecase(
	resourceRepository contracts.ResourceRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ResourceUsecase {
	onceResourceUsecase.Do(func() {
		instance := &resourceUsecase{
			ResourceRepository: resourceRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		resourceUsecaseInstance = instance
	})
	return resourceUsecaseInstance
}

// ListResources serves the library listing from redis when possible. The
// catalog changes rarely, so a short TTL keeps the happy path off postgres.
func (uc *resourceUsecase) ListResources(ctx context.Context, category string) ([]responses.Resource, error) {
	cacheCategory := category
	if cacheCategory == "" {
		cacheCategory = "all"
	}
	cacheKey := fmt.Sprintf(constvars.RedisKeyResourceListFormat, cacheCategory)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var items []responses.Resource
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		uc.Log.Warn("resourceUsecase.ListResources ignoring malformed cache entry",
			zap.String(constvars.LoggingRedisKey, cacheKey),
		)
	}

	resources, err := uc.ResourceRepository.FindResources(ctx, category)
	if err != nil {
		return nil, err
	}

	items := make([]responses.Resource, 0, len(resources))
	for i := range resources {
		items = append(items, mapResourceToListItem(&resources[i]))
	}

	cacheTTL := time.Duration(uc.InternalConfig.Assessment.ResourceCacheTTLInSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, items, cacheTTL); err != nil {
		uc.Log.Warn("resourceUsecase.ListResources failed to cache listing",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	return items, nil
}

func (uc *resourceUsecase) FindResourceBySlug(ctx context.Context, slug string) (*responses.Resource, error) {
	if slug == "" {
		return nil, exceptions.ErrURLParamMissing(constvars.URLParamResourceSlug)
	}

	resource, err := uc.ResourceRepository.FindResourceBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, exceptions.ErrResourceNotFound(nil)
	}

	return &responses.Resource{
		ID:              resource.ID,
		Slug:            resource.Slug,
		Title:           resource.Title,
		Category:        resource.Category,
		Summary:         resource.Summary,
		Body:            resource.Body,
		DurationMinutes: resource.DurationMinutes,
	}, nil
}

// mapResourceToListItem omits the body; listings only need card data.
func mapResourceToListItem(resource *models.Resource) responses.Resource {
	return responses.Resource{
		ID:              resource.ID,
		Slug:            resource.Slug,
		Title:           resource.Title,
		Category:        resource.Category,
		Summary:         resource.Summary,
		DurationMinutes: resource.DurationMinutes,
	}
}
