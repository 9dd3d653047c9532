package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// ListOperators возвращает мобильных операторов по имени.
func (s *Storage) ListOperators(ctx context.Context) ([]*models.MobileOperator, error) {
	const op = "storage.ListOperators"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, prefix FROM mobile_operators ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MobileOperator
	for rows.Next() {
		var item models.MobileOperator
		if err := rows.Scan(&item.ID, &item.Name, &item.Prefix); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateOperator добавляет мобильного оператора и возвращает его ID.
func (s *Storage) CreateOperator(ctx context.Context, name, prefix string) (int, error) {
	const op = "storage.CreateOperator"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO mobile_operators (name, prefix)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query, name, prefix).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListPhonesBySubscriber возвращает номера абонента с именем оператора.
func (s *Storage) ListPhonesBySubscriber(ctx context.Context, subscriberID int) ([]*models.PhoneInfo, error) {
	const op = "storage.ListPhonesBySubscriber"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT pn.id, pn.number, pn.type, mo.name, pn.active
			  FROM phone_numbers pn
			  LEFT JOIN mobile_operators mo ON mo.id = pn.operator_id
			  WHERE pn.subscriber_id = $1
			  ORDER BY pn.number`
	rows, err := s.DB.QueryContext(ctx, query, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PhoneInfo
	for rows.Next() {
		var item models.PhoneInfo
		if err := rows.Scan(&item.ID, &item.Number, &item.Type,
			&item.OperatorName, &item.Active); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreatePhone добавляет телефонный номер и возвращает его ID.
// SubscriberID допускает NULL: служебные линии не принадлежат абоненту.
func (s *Storage) CreatePhone(ctx context.Context, phone models.PhoneNumber) (int, error) {
	const op = "storage.CreatePhone"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO phone_numbers (number, type, subscriber_id, operator_id, active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		phone.Number, phone.Type, phone.SubscriberID, phone.OperatorID,
		phone.Active).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// DeletePhone удаляет номер по ID и возвращает количество удалённых строк.
func (s *Storage) DeletePhone(ctx context.Context, id int) (int, error) {
	const op = "storage.DeletePhone"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM phone_numbers WHERE id = $1`
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
