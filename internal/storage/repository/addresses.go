package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// querier покрывает *sql.DB и *sql.Tx: разрешение улицы выполняется
// и отдельно, и внутри транзакций редактирования абонента.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getOrCreateStreet(ctx context.Context, q querier, name, streetType string) (int, error) {
	var id int
	err := q.QueryRowContext(ctx,
		`SELECT id FROM streets WHERE name = $1 AND type = $2`, name, streetType).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	err = q.QueryRowContext(ctx,
		`INSERT INTO streets (name, type) VALUES ($1, $2) RETURNING id`,
		name, streetType).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetOrCreateStreet возвращает id улицы по паре (название, тип),
// создавая её при отсутствии. Повторные вызовы с теми же аргументами
// возвращают тот же id.
func (s *Storage) GetOrCreateStreet(ctx context.Context, name, streetType string) (int, error) {
	const op = "storage.GetOrCreateStreet"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id, err := getOrCreateStreet(ctx, s.DB, name, streetType)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// CreateAddress создаёт адрес, разрешая улицу через поиск-или-создание,
// и возвращает id нового адреса.
func (s *Storage) CreateAddress(ctx context.Context, fields models.AddressFields) (int, error) {
	const op = "storage.CreateAddress"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	streetID, err := getOrCreateStreet(ctx, s.DB, fields.StreetName, fields.StreetType)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	err = s.DB.QueryRowContext(ctx,
		`INSERT INTO addresses (street_id, building, apartment)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id`,
		streetID, fields.Building, fields.Apartment).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateAddress меняет улицу, дом и квартиру существующего адреса.
func (s *Storage) UpdateAddress(ctx context.Context, addressID int, fields models.AddressFields) (int, error) {
	const op = "storage.UpdateAddress"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	streetID, err := getOrCreateStreet(ctx, s.DB, fields.StreetName, fields.StreetType)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE addresses
		 SET street_id = $1, building = $2, apartment = NULLIF($3, '')
		 WHERE id = $4`,
		streetID, fields.Building, fields.Apartment, addressID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// upsertAddress обновляет адрес по id либо создаёт новый, если id нулевой.
// Возвращает id итогового адреса.
func upsertAddress(ctx context.Context, q querier, addressID *int, fields models.AddressFields) (int, error) {
	streetID, err := getOrCreateStreet(ctx, q, fields.StreetName, fields.StreetType)
	if err != nil {
		return 0, err
	}

	if addressID != nil && *addressID != 0 {
		_, err := q.ExecContext(ctx,
			`UPDATE addresses
			 SET street_id = $1, building = $2, apartment = NULLIF($3, '')
			 WHERE id = $4`,
			streetID, fields.Building, fields.Apartment, *addressID)
		if err != nil {
			return 0, err
		}
		return *addressID, nil
	}

	var newID int
	err = q.QueryRowContext(ctx,
		`INSERT INTO addresses (street_id, building, apartment)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id`,
		streetID, fields.Building, fields.Apartment).Scan(&newID)
	if err != nil {
		return 0, err
	}
	return newID, nil
}

// UpsertAddress обновляет существующий адрес или создаёт новый.
func (s *Storage) UpsertAddress(ctx context.Context, addressID *int, fields models.AddressFields) (int, error) {
	const op = "storage.UpsertAddress"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id, err := upsertAddress(ctx, s.DB, addressID, fields)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// GetAddress возвращает адрес с развёрнутой улицей, nil если адреса нет.
func (s *Storage) GetAddress(ctx context.Context, addressID int) (*models.AddressInfo, error) {
	const op = "storage.GetAddress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, st.name, st.type, a.building, COALESCE(a.apartment, '')
			  FROM addresses a
			  JOIN streets st ON st.id = a.street_id
			  WHERE a.id = $1`
	info := &models.AddressInfo{}
	row := s.DB.QueryRowContext(ctx, query, addressID)
	if err := row.Scan(&info.ID, &info.StreetName, &info.StreetType,
		&info.Building, &info.Apartment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return info, nil
}

// ListPostOffices возвращает отделения с адресами, по номеру отделения.
func (s *Storage) ListPostOffices(ctx context.Context) ([]*models.PostOfficeInfo, error) {
	const op = "storage.ListPostOffices"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT po.id, po.office_number, st.name, st.type, a.building, a.apartment
			  FROM post_offices po
			  LEFT JOIN addresses a ON a.id = po.address_id
			  LEFT JOIN streets st ON st.id = a.street_id
			  ORDER BY po.office_number`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PostOfficeInfo
	for rows.Next() {
		var po models.PostOfficeInfo
		if err := rows.Scan(&po.ID, &po.OfficeNumber, &po.StreetName, &po.StreetType,
			&po.Building, &po.Apartment); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &po)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreatePostOffice создаёт отделение с привязкой к адресу.
func (s *Storage) CreatePostOffice(ctx context.Context, officeNumber int, addressID *int) (int, error) {
	const op = "storage.CreatePostOffice"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO post_offices (office_number, address_id)
		 VALUES ($1, $2)
		 RETURNING id`,
		officeNumber, addressID).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// upsertPostOffice обновляет отделение по id либо создаёт новое.
func upsertPostOffice(ctx context.Context, q querier, postOfficeID *int, officeNumber int, addressID int) (int, error) {
	if postOfficeID != nil && *postOfficeID != 0 {
		_, err := q.ExecContext(ctx,
			`UPDATE post_offices
			 SET office_number = $1, address_id = $2
			 WHERE id = $3`,
			officeNumber, addressID, *postOfficeID)
		if err != nil {
			return 0, err
		}
		return *postOfficeID, nil
	}

	var newID int
	err := q.QueryRowContext(ctx,
		`INSERT INTO post_offices (office_number, address_id)
		 VALUES ($1, $2)
		 RETURNING id`,
		officeNumber, addressID).Scan(&newID)
	if err != nil {
		return 0, err
	}
	return newID, nil
}

// UpsertPostOffice обновляет существующее отделение или создаёт новое.
func (s *Storage) UpsertPostOffice(ctx context.Context, postOfficeID *int, officeNumber int, addressID int) (int, error) {
	const op = "storage.UpsertPostOffice"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id, err := upsertPostOffice(ctx, s.DB, postOfficeID, officeNumber, addressID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}
