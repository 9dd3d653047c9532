package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// ListRepairs возвращает ремонтные работы с адресами, свежие сверху.
func (s *Storage) ListRepairs(ctx context.Context) ([]*models.RepairRow, error) {
	const op = "storage.ListRepairs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT rw.id, rw.address_id, rw.date_start, rw.date_end, rw.description,
				  st.name, st.type, a.building, a.apartment
			  FROM repair_works rw
			  LEFT JOIN addresses a ON a.id = rw.address_id
			  LEFT JOIN streets st ON st.id = a.street_id
			  ORDER BY rw.date_start DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.RepairRow
	for rows.Next() {
		var item models.RepairRow
		if err := rows.Scan(&item.ID, &item.AddressID, &item.DateStart, &item.DateEnd,
			&item.Description, &item.StreetName, &item.StreetType,
			&item.Building, &item.Apartment); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetRepair возвращает ремонт с адресом, nil если записи нет.
func (s *Storage) GetRepair(ctx context.Context, id int) (*models.RepairRow, error) {
	const op = "storage.GetRepair"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.address_id, r.date_start, r.date_end, r.description,
				  st.name, st.type, a.building, a.apartment
			  FROM repair_works r
			  LEFT JOIN addresses a ON a.id = r.address_id
			  LEFT JOIN streets st ON st.id = a.street_id
			  WHERE r.id = $1`
	item := &models.RepairRow{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&item.ID, &item.AddressID, &item.DateStart, &item.DateEnd,
		&item.Description, &item.StreetName, &item.StreetType,
		&item.Building, &item.Apartment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// CreateRepair регистрирует ремонт: адрес создаётся в той же
// транзакции через поиск-или-создание улицы. Возвращает id ремонта.
func (s *Storage) CreateRepair(ctx context.Context, fields models.AddressFields,
	dateStart, dateEnd time.Time, description string) (int, error) {
	const op = "storage.CreateRepair"
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

	addressID, err := upsertAddress(ctx, tx, nil, fields)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO repair_works (address_id, date_start, date_end, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		addressID, dateStart, dateEnd, description).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateRepair обновляет ремонт вместе с его адресом в одной
// транзакции, возвращает количество изменённых строк ремонта.
func (s *Storage) UpdateRepair(ctx context.Context, id int, fields models.AddressFields,
	dateStart, dateEnd time.Time, description string) (int, error) {
	const op = "storage.UpdateRepair"
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

	var addressID int
	row := tx.QueryRowContext(ctx,
		`SELECT address_id FROM repair_works WHERE id = $1`, id)
	if err := row.Scan(&addressID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	addressID, err = upsertAddress(ctx, tx, &addressID, fields)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE repair_works
		 SET address_id = $1, date_start = $2, date_end = $3, description = $4
		 WHERE id = $5`,
		addressID, dateStart, dateEnd, description, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteRepair удаляет ремонт, возвращает количество удалённых строк.
func (s *Storage) DeleteRepair(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteRepair"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM repair_works WHERE id = $1`
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

// SearchRepairs ищет ремонты по LIKE-шаблону в названии улицы,
// доме или квартире.
func (s *Storage) SearchRepairs(ctx context.Context, like string) ([]*models.RepairRow, error) {
	const op = "storage.SearchRepairs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.address_id, r.date_start, r.date_end, r.description,
				  st.name, st.type, a.building, a.apartment
			  FROM repair_works r
			  JOIN addresses a ON a.id = r.address_id
			  JOIN streets st ON st.id = a.street_id
			  WHERE st.name LIKE $1
				 OR a.building LIKE $1
				 OR a.apartment LIKE $1
			  ORDER BY r.date_start DESC`
	rows, err := s.DB.QueryContext(ctx, query, like)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.RepairRow
	for rows.Next() {
		var item models.RepairRow
		if err := rows.Scan(&item.ID, &item.AddressID, &item.DateStart, &item.DateEnd,
			&item.Description, &item.StreetName, &item.StreetType,
			&item.Building, &item.Apartment); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
