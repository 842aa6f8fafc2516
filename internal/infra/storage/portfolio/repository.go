package portfolio

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-NailStudio/pkg/psqlbuilder"
)

var itemColumns = []string{
	"id",
	"title",
	"description",
	"image_url",
	"object_key",
	"tags",
	"is_featured",
	"display_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий портфолио
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория портфолио
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет работу
func (r *Repository) Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := psqlbuilder.Insert("portfolio_items").
		Columns("title", "description", "image_url", "object_key", "tags", "is_featured", "display_order").
		Values(item.Title, item.Description, item.ImageURL, item.ObjectKey, pq.Array(tags), item.IsFeatured, item.DisplayOrder).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	item.Tags = tags
	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetByID получает работу по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("portfolio_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %w", ErrScanRow, err)
	}

	return item, nil
}

// List получает работы в порядке показа. featuredOnly - только избранные для главной
func (r *Repository) List(ctx context.Context, featuredOnly bool) ([]*domain.PortfolioItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(featuredOnly).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.PortfolioItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return items, nil
}

// Update частично обновляет работу и возвращает её новое состояние
func (r *Repository) Update(ctx context.Context, id uuid.UUID, update *domain.PortfolioItemUpdate) (*domain.PortfolioItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpdateQuery(id, update).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return item, nil
}

// Delete удаляет работу
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("portfolio_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func buildListQuery(featuredOnly bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(itemColumns...).
		From("portfolio_items").
		OrderBy("display_order ASC", "created_at DESC")

	if featuredOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_featured": true})
	}

	return selectBuilder
}

func buildUpdateQuery(id uuid.UUID, update *domain.PortfolioItemUpdate) squirrel.UpdateBuilder {
	updateBuilder := psqlbuilder.Update("portfolio_items").
		Set("updated_at", squirrel.Expr("NOW()"))

	if update.Title != nil {
		updateBuilder = updateBuilder.Set("title", *update.Title)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Tags != nil {
		tags := *update.Tags
		if tags == nil {
			tags = []string{}
		}
		updateBuilder = updateBuilder.Set("tags", pq.Array(tags))
	}
	if update.IsFeatured != nil {
		updateBuilder = updateBuilder.Set("is_featured", *update.IsFeatured)
	}
	if update.DisplayOrder != nil {
		updateBuilder = updateBuilder.Set("display_order", *update.DisplayOrder)
	}

	return updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", "))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.PortfolioItem, error) {
	var (
		item                 domain.PortfolioItem
		tags                 pq.StringArray
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.ImageURL,
		&item.ObjectKey,
		&tags,
		&item.IsFeatured,
		&item.DisplayOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Tags = []string(tags)
	if item.Tags == nil {
		item.Tags = []string{}
	}
	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}
