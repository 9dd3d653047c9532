package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// ListDebtsBySubscriber возвращает долги абонента, свежие сверху.
func (s *Storage) ListDebtsBySubscriber(ctx context.Context, subscriberID int) ([]*models.Debt, error) {
	const op = "storage.ListDebtsBySubscriber"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, subscriber_id, amount, date_start, deadline, status
			  FROM debts
			  WHERE subscriber_id = $1
			  ORDER BY date_start DESC`
	rows, err := s.DB.QueryContext(ctx, query, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Debt
	for rows.Next() {
		var item models.Debt
		if err := rows.Scan(&item.ID, &item.SubscriberID, &item.Amount,
			&item.DateStart, &item.Deadline, &item.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateDebt добавляет долг абоненту и возвращает его ID.
func (s *Storage) CreateDebt(ctx context.Context, subscriberID int, amount float64,
	dateStart time.Time, deadline *time.Time, status string) (int, error) {
	const op = "storage.CreateDebt"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO debts (subscriber_id, amount, date_start, deadline, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		subscriberID, amount, dateStart, deadline, status).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// DeleteDebt удаляет долг и возвращает количество удалённых строк.
func (s *Storage) DeleteDebt(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteDebt"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM debts WHERE id = $1`
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

// UpdateDebt меняет сумму и статус долга, возвращает количество
// изменённых строк.
func (s *Storage) UpdateDebt(ctx context.Context, id int, amount float64, status string) (int, error) {
	const op = "storage.UpdateDebt"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE debts
			  SET amount = $1, status = $2
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, amount, status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListDebtors агрегирует активные долги по абонентам: только строки
// с положительной суммой, по убыванию общей задолженности.
func (s *Storage) ListDebtors(ctx context.Context) ([]*models.DebtorTotal, error) {
	const op = "storage.ListDebtors"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.id, s.lastname, s.firstname, COALESCE(s.middlename, ''),
				  SUM(d.amount) AS total_debt
			  FROM subscribers s
			  JOIN debts d ON d.subscriber_id = s.id
			  WHERE d.status = 'active'
			  GROUP BY s.id
			  HAVING SUM(d.amount) > 0
			  ORDER BY total_debt DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.DebtorTotal
	for rows.Next() {
		var item models.DebtorTotal
		if err := rows.Scan(&item.SubscriberID, &item.Lastname, &item.Firstname,
			&item.Middlename, &item.TotalDebt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SearchDebtors ищет долги по LIKE-шаблону в ФИО абонента,
// упорядочено по фамилии.
func (s *Storage) SearchDebtors(ctx context.Context, like string) ([]*models.DebtorRow, error) {
	const op = "storage.SearchDebtors"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.lastname, s.firstname, COALESCE(s.middlename, ''),
				  d.amount, d.date_start, d.deadline, d.status
			  FROM debts d
			  JOIN subscribers s ON s.id = d.subscriber_id
			  WHERE s.lastname LIKE $1
				 OR s.firstname LIKE $1
				 OR s.middlename LIKE $1
			  ORDER BY s.lastname`
	rows, err := s.DB.QueryContext(ctx, query, like)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.DebtorRow
	for rows.Next() {
		var item models.DebtorRow
		if err := rows.Scan(&item.Lastname, &item.Firstname, &item.Middlename,
			&item.Amount, &item.DateStart, &item.Deadline, &item.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindOverdueDebts находит активные долги с истёкшим сроком погашения.
func (s *Storage) FindOverdueDebts(ctx context.Context) ([]*models.OverdueDebt, error) {
	const op = "storage.FindOverdueDebts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT d.id, s.lastname, s.firstname, COALESCE(s.middlename, ''),
				  d.amount, d.deadline
			  FROM debts d
			  JOIN subscribers s ON s.id = d.subscriber_id
			  WHERE d.status = 'active'
				AND d.deadline IS NOT NULL
				AND d.deadline < CURRENT_DATE`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.OverdueDebt
	for rows.Next() {
		var item models.OverdueDebt
		if err := rows.Scan(&item.DebtID, &item.Lastname, &item.Firstname,
			&item.Middlename, &item.Amount, &item.Deadline); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
