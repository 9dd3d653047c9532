package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// ListNumberChangeRequests возвращает заявки на смену номера с ФИО
// абонента, свежие сверху.
func (s *Storage) ListNumberChangeRequests(ctx context.Context) ([]*models.NumberChangeRow, error) {
	const op = "storage.ListNumberChangeRequests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.subscriber_id, r.old_number, r.new_number,
				  r.date_request, r.status,
				  s.lastname, s.firstname, s.middlename
			  FROM number_change_requests r
			  LEFT JOIN subscribers s ON s.id = r.subscriber_id
			  ORDER BY r.date_request DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.NumberChangeRow
	for rows.Next() {
		var item models.NumberChangeRow
		if err := rows.Scan(&item.ID, &item.SubscriberID, &item.OldNumber,
			&item.NewNumber, &item.DateRequest, &item.Status,
			&item.Lastname, &item.Firstname, &item.Middlename); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetNumberChangeRequest возвращает заявку по id, nil если её нет.
func (s *Storage) GetNumberChangeRequest(ctx context.Context, id int) (*models.NumberChangeRequest, error) {
	const op = "storage.GetNumberChangeRequest"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, subscriber_id, old_number, new_number, date_request, status
			  FROM number_change_requests
			  WHERE id = $1`
	r := &models.NumberChangeRequest{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&r.ID, &r.SubscriberID, &r.OldNumber, &r.NewNumber,
		&r.DateRequest, &r.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// CreateNumberChangeRequest сохраняет заявку на смену номера в статусе new.
func (s *Storage) CreateNumberChangeRequest(ctx context.Context, req models.CreateNumberChangeRequest) (int, error) {
	const op = "storage.CreateNumberChangeRequest"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO number_change_requests
				  (subscriber_id, old_number, new_number, date_request, status)
			  VALUES ($1, $2, $3, CURRENT_DATE, $4)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		req.SubscriberID, req.OldNumber, req.NewNumber,
		models.NumberChangeStatusNew).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateNumberChangeStatus меняет статус заявки, возвращает количество
// изменённых строк.
func (s *Storage) UpdateNumberChangeStatus(ctx context.Context, id int, status string) (int, error) {
	const op = "storage.UpdateNumberChangeStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE number_change_requests SET status = $1 WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteNumberChangeRequest удаляет заявку, возвращает количество
// удалённых строк.
func (s *Storage) DeleteNumberChangeRequest(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteNumberChangeRequest"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM number_change_requests WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ApplyNumberChange применяет одобренную заявку в одной транзакции:
// удаляет номер абонента, совпадающий со старым (отсутствие совпадения
// не прерывает сценарий), добавляет новый мобильный номер без оператора
// и удаляет саму заявку.
func (s *Storage) ApplyNumberChange(ctx context.Context, req *models.NumberChangeRequest) error {
	const op = "storage.ApplyNumberChange"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM phone_numbers WHERE number = $1 AND subscriber_id = $2`,
		req.OldNumber, req.SubscriberID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO phone_numbers (number, type, subscriber_id, operator_id, active)
		 VALUES ($1, $2, $3, NULL, TRUE)`,
		req.NewNumber, models.PhoneTypeMobile, req.SubscriberID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM number_change_requests WHERE id = $1`, req.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
