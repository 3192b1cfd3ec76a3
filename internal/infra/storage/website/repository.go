package website

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/pkg/dbmetrics"
	"github.com/m04kA/SMC-SiteBookings/pkg/psqlbuilder"
)

const (
	tableWebsites = "websites"

	pgUniqueViolation = "23505"
)

var websiteColumns = []string{
	"id",
	"name",
	"email",
	"access_token",
	"timezone",
	"created_at",
	"updated_at",
}

// Repository репозиторий зарегистрированных сайтов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый сайт
// Нарушение уникальности name, email или access_token возвращает ErrDuplicateWebsite
func (r *Repository) Create(ctx context.Context, website *domain.Website) (*domain.Website, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableWebsites).
		Columns("name", "email", "access_token", "timezone").
		Values(website.Name, website.Email, website.AccessToken, website.Timezone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&website.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWebsite, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	website.CreatedAt = createdAt.Time
	website.UpdatedAt = updatedAt.Time

	return website, nil
}

// GetByToken находит сайт по bearer токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Website, error) {
	return r.getOne(ctx, "GetByToken", squirrel.Eq{"access_token": token})
}

// GetByID находит сайт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Website, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Website, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(websiteColumns...).
		From(tableWebsites).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var website domain.Website
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&website.ID,
		&website.Name,
		&website.Email,
		&website.AccessToken,
		&website.Timezone,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWebsiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan website: %v", ErrScanRow, op, err)
	}

	website.CreatedAt = createdAt.Time
	website.UpdatedAt = updatedAt.Time

	return &website, nil
}
