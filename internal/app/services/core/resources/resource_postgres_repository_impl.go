package resources

import (
	"context"
	"database/sql"
	"sync"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type resourcePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	resourcePostgresRepositoryInstance contracts.ResourceRepository
	onceResourcePostgresRepository     sync.Once
)

func NewResourcePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ResourceRepository {
	onceResourcePostgresRepository.Do(func() {
		instance := &resourcePostgresRepository{
			DB:  db,
			Log: logger,
		}
		resourcePostgresRepositoryInstance = instance
	})
	return resourcePostgresRepositoryInstance
}

func (r *resourcePostgresRepository) FindResources(ctx context.Context, category string) ([]models.Resource, error) {
	var rows *sql.Rows
	var err error
	if category == "" {
		rows, err = r.DB.QueryContext(ctx, queries.FindAllResources)
	} else {
		rows, err = r.DB.QueryContext(ctx, queries.FindResourcesByCategory, category)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}
	defer rows.Close()

	items := make([]models.Resource, 0)
	for rows.Next() {
		var resource models.Resource
		err := rows.Scan(
			&resource.ID, &resource.Slug, &resource.Title, &resource.Category,
			&resource.Summary, &resource.Body, &resource.DurationMinutes,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBSelectData(err)
		}
		items = append(items, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}

	return items, nil
}

func (r *resourcePostgresRepository) FindResourceBySlug(ctx context.Context, slug string) (*models.Resource, error) {
	var resource models.Resource
	err := r.DB.QueryRowContext(ctx, queries.FindResourceBySlug, slug).Scan(
		&resource.ID, &resource.Slug, &resource.Title, &resource.Category,
		&resource.Summary, &resource.Body, &resource.DurationMinutes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}
	return &resource, nil
}
