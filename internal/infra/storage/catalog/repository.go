package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/dbmetrics"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий демонстрационного каталога мастеров и работ.
// Каталог заполняется сидом и служит песочницей витрины; заказы и отзывы
// в нем не хранятся.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCraftsmen получает мастеров с гибкой фильтрацией.
// Все фильтры опциональны и комбинируются:
// - Craft: точное совпадение ремесла
// - City: точное совпадение города
// - MinRating: минимальный рейтинг
// - Search: подстрока имени без учета регистра
func (r *Repository) ListCraftsmen(ctx context.Context, filter domain.CraftsmenFilter) ([]*domain.Craftsman, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"craft",
		"city",
		"rating",
		"price_from",
		"bio",
		"created_at",
	).
		From("craftsmen")

	if filter.Craft != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"craft": *filter.Craft})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.MinRating != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"rating": *filter.MinRating})
	}
	if filter.Search != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"name": "%" + *filter.Search + "%"})
	}

	query, args, err := selectBuilder.
		OrderBy("rating DESC, name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCraftsmen - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCraftsmen - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	craftsmen := make([]*domain.Craftsman, 0)
	for rows.Next() {
		var craftsman domain.Craftsman
		var createdAt sql.NullTime

		err := rows.Scan(
			&craftsman.ID,
			&craftsman.Name,
			&craftsman.Craft,
			&craftsman.City,
			&craftsman.Rating,
			&craftsman.PriceFrom,
			&craftsman.Bio,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCraftsmen - scan row: %v", ErrScanRow, err)
		}

		craftsman.CreatedAt = createdAt.Time
		craftsmen = append(craftsmen, &craftsman)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCraftsmen - rows error: %v", ErrScanRow, err)
	}

	return craftsmen, nil
}

// GetCraftsmanByID получает мастера по ID
func (r *Repository) GetCraftsmanByID(ctx context.Context, id int64) (*domain.Craftsman, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"craft",
		"city",
		"rating",
		"price_from",
		"bio",
		"created_at",
	).
		From("craftsmen").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCraftsmanByID - build select query: %v", ErrBuildQuery, err)
	}

	var craftsman domain.Craftsman
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&craftsman.ID,
		&craftsman.Name,
		&craftsman.Craft,
		&craftsman.City,
		&craftsman.Rating,
		&craftsman.PriceFrom,
		&craftsman.Bio,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCraftsmanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCraftsmanByID - scan craftsman: %v", ErrScanRow, err)
	}

	craftsman.CreatedAt = createdAt.Time
	return &craftsman, nil
}

// ListCrafts получает все каталожные работы
func (r *Repository) ListCrafts(ctx context.Context) ([]*domain.Craft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"base_price",
		"created_at",
	).
		From("crafts").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCrafts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCrafts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	crafts := make([]*domain.Craft, 0)
	for rows.Next() {
		var craft domain.Craft
		var createdAt sql.NullTime

		err := rows.Scan(
			&craft.ID,
			&craft.Name,
			&craft.Description,
			&craft.BasePrice,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCrafts - scan row: %v", ErrScanRow, err)
		}

		craft.CreatedAt = createdAt.Time
		crafts = append(crafts, &craft)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCrafts - rows error: %v", ErrScanRow, err)
	}

	return crafts, nil
}
