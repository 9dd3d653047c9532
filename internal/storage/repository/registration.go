package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// CreateRegistrationRequest сохраняет заявку гостя на доступ в статусе new.
func (s *Storage) CreateRegistrationRequest(ctx context.Context, login, passwordHash string) (int, error) {
	const op = "storage.CreateRegistrationRequest"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO registration_requests (login, password_hash, status)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		login, passwordHash, models.RegistrationStatusNew).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListRegistrationRequests возвращает заявки, новые сверху.
func (s *Storage) ListRegistrationRequests(ctx context.Context) ([]*models.RegistrationRequest, error) {
	const op = "storage.ListRegistrationRequests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, login, status
			  FROM registration_requests
			  ORDER BY id DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.RegistrationRequest
	for rows.Next() {
		var r models.RegistrationRequest
		if err := rows.Scan(&r.ID, &r.Login, &r.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetRegistrationRequest возвращает заявку по id, nil если её нет.
func (s *Storage) GetRegistrationRequest(ctx context.Context, id int) (*models.RegistrationRequest, error) {
	const op = "storage.GetRegistrationRequest"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, login, password_hash, status
			  FROM registration_requests
			  WHERE id = $1`
	r := &models.RegistrationRequest{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&r.ID, &r.Login, &r.PasswordHash, &r.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// ApproveRegistrationRequest одобряет заявку: создаёт пользователя
// с ролью user, перенося хэш пароля без изменений, и помечает заявку
// approved. Отсутствующая заявка — false без побочных эффектов.
// Всё выполняется в одной транзакции.
func (s *Storage) ApproveRegistrationRequest(ctx context.Context, id int) (bool, error) {
	const op = "storage.ApproveRegistrationRequest"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var login, passwordHash string
	row := tx.QueryRowContext(ctx,
		`SELECT login, password_hash FROM registration_requests WHERE id = $1`, id)
	if err := row.Scan(&login, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3)`,
		login, passwordHash, models.RoleUser.String()); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE registration_requests SET status = $1 WHERE id = $2`,
		models.RegistrationStatusApproved, id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// RejectRegistrationRequest помечает заявку rejected.
// Отсутствующий id — тихий no-op.
func (s *Storage) RejectRegistrationRequest(ctx context.Context, id int) (int, error) {
	const op = "storage.RejectRegistrationRequest"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE registration_requests SET status = $1 WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, models.RegistrationStatusRejected, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
