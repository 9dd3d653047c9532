package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// ListSpecialServices возвращает спецслужбы с их номерами, по названию.
func (s *Storage) ListSpecialServices(ctx context.Context) ([]*models.SpecialServiceRow, error) {
	const op = "storage.ListSpecialServices"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ss.id, ss.name, ss.phone_id, ss.description,
				  ss.weekday, ss.time_start, ss.time_end, pn.number
			  FROM special_services ss
			  LEFT JOIN phone_numbers pn ON pn.id = ss.phone_id
			  ORDER BY ss.name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.SpecialServiceRow
	for rows.Next() {
		var item models.SpecialServiceRow
		if err := rows.Scan(&item.ID, &item.Name, &item.PhoneID, &item.Description,
			&item.Weekday, &item.TimeStart, &item.TimeEnd, &item.Number); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateSpecialService регистрирует службу вместе со служебной линией
// в одной транзакции и возвращает id службы.
func (s *Storage) CreateSpecialService(ctx context.Context, req models.CreateSpecialServiceRequest) (int, error) {
	const op = "storage.CreateSpecialService"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var phoneID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO phone_numbers (number, type, subscriber_id, operator_id, active)
		 VALUES ($1, $2, NULL, NULL, TRUE)
		 RETURNING id`,
		req.Number, models.PhoneTypeService).Scan(&phoneID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO special_services (name, phone_id, description, weekday, time_start, time_end)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id`,
		req.Name, phoneID, req.Description, req.Weekday,
		req.TimeStart, req.TimeEnd).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
