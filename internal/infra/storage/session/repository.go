package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/dbmetrics"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий сессий. Сессия хранит bearer-токен backend вместе
// с ролью и идентификатором пользователя, чтобы авторизационный контекст
// передавался явно, а не читался из глобального состояния.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"id",
			"token",
			"role",
			"user_id",
		).
		Values(
			sess.ID,
			sess.Token,
			string(sess.Role),
			sess.UserID,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sess.CreatedAt = createdAt.Time
	return sess, nil
}

// GetByToken получает сессию по bearer-токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"token",
		"role",
		"user_id",
		"created_at",
	).
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var sess domain.Session
	var role string
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sess.ID,
		&sess.Token,
		&role,
		&sess.UserID,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan session: %v", ErrScanRow, err)
	}

	sess.Role = domain.Role(role)
	sess.CreatedAt = createdAt.Time

	return &sess, nil
}

// DeleteByToken удаляет сессию по bearer-токену (logout)
func (r *Repository) DeleteByToken(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
