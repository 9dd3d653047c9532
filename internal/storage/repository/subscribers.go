package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// fullAddressExpr собирает локализованную строку адреса вида
// "вул. Шевченка 10, кв. 5". Для абонента без адреса выражение NULL.
const fullAddressExpr = `st.type || '. ' || st.name || ' ' || a.building ||
	CASE WHEN a.apartment IS NOT NULL THEN ', кв. ' || a.apartment ELSE '' END`

// ListSubscribers возвращает всех абонентов с основным активным номером,
// собранным адресом и номером почтового отделения. Основной номер
// выбирается в порядке mobile, home, service, затем по id.
func (s *Storage) ListSubscribers(ctx context.Context) ([]*models.SubscriberRow, error) {
	const op = "storage.ListSubscribers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
				  s.id,
				  s.lastname,
				  s.firstname,
				  COALESCE(s.middlename, ''),
				  (
					  SELECT pn.number
					  FROM phone_numbers pn
					  WHERE pn.subscriber_id = s.id AND pn.active = TRUE
					  ORDER BY
						  (CASE pn.type
							  WHEN 'mobile' THEN 0
							  WHEN 'home' THEN 1
							  WHEN 'service' THEN 2
							  ELSE 3 END),
						  pn.id ASC
					  LIMIT 1
				  ) AS main_phone,
				  st.type,
				  st.name,
				  a.building,
				  a.apartment,
				  (` + fullAddressExpr + `) AS full_address,
				  po.office_number
			  FROM subscribers s
			  LEFT JOIN addresses a ON a.id = s.address_id
			  LEFT JOIN streets st ON st.id = a.street_id
			  LEFT JOIN post_offices po ON po.id = s.post_office_id
			  ORDER BY s.lastname, s.firstname`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.SubscriberRow
	for rows.Next() {
		var item models.SubscriberRow
		if err := rows.Scan(&item.ID, &item.Lastname, &item.Firstname, &item.Middlename,
			&item.MainPhone, &item.StreetType, &item.StreetName, &item.Building,
			&item.Apartment, &item.FullAddress, &item.OfficeNumber); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetSubscriber возвращает карточку абонента с развёрнутым адресом
// и отделением, nil если абонента нет.
func (s *Storage) GetSubscriber(ctx context.Context, id int) (*models.SubscriberDetails, error) {
	const op = "storage.GetSubscriber"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
				  s.id, s.lastname, s.firstname, COALESCE(s.middlename, ''),
				  s.address_id, s.post_office_id,
				  st.name, st.type, a.building, a.apartment,
				  po.office_number
			  FROM subscribers s
			  LEFT JOIN addresses a ON a.id = s.address_id
			  LEFT JOIN streets st ON st.id = a.street_id
			  LEFT JOIN post_offices po ON po.id = s.post_office_id
			  WHERE s.id = $1`
	d := &models.SubscriberDetails{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&d.ID, &d.Lastname, &d.Firstname, &d.Middlename,
		&d.AddressID, &d.PostOfficeID,
		&d.StreetName, &d.StreetType, &d.Building, &d.Apartment,
		&d.OfficeNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

// CreateSubscriber создаёт абонента, при наличии улицы и дома вместе
// с адресом. Всё в одной транзакции; возвращает id абонента.
func (s *Storage) CreateSubscriber(ctx context.Context, req models.CreateSubscriberRequest) (int, error) {
	const op = "storage.CreateSubscriber"
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

	var addressID *int
	if req.StreetName != "" && req.Building != "" {
		id, err := upsertAddress(ctx, tx, nil, models.AddressFields{
			StreetName: req.StreetName,
			StreetType: req.StreetType,
			Building:   req.Building,
			Apartment:  req.Apartment,
		})
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		addressID = &id
	}

	var newID int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO subscribers (lastname, firstname, middlename, address_id, post_office_id)
		 VALUES ($1, $2, NULLIF($3, ''), $4, NULL)
		 RETURNING id`,
		req.Lastname, req.Firstname, req.Middlename, addressID).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateSubscriber обновляет ФИО, адрес и почтовое отделение абонента
// в одной транзакции: адрес и отделение обновляются на месте либо
// создаются, ссылки абонента переустанавливаются. Возвращает
// количество изменённых строк абонента.
func (s *Storage) UpdateSubscriber(ctx context.Context, id int, req models.UpdateSubscriberRequest) (int, error) {
	const op = "storage.UpdateSubscriber"
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

	var currentAddressID, currentPostOfficeID *int
	row := tx.QueryRowContext(ctx,
		`SELECT address_id, post_office_id FROM subscribers WHERE id = $1`, id)
	if err := row.Scan(&currentAddressID, &currentPostOfficeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE subscribers
		 SET lastname = $1, firstname = $2, middlename = NULLIF($3, '')
		 WHERE id = $4`,
		req.Lastname, req.Firstname, req.Middlename, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	addressID, err := upsertAddress(ctx, tx, currentAddressID, models.AddressFields{
		StreetName: req.StreetName,
		StreetType: req.StreetType,
		Building:   req.Building,
		Apartment:  req.Apartment,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	postOfficeID, err := upsertPostOffice(ctx, tx, currentPostOfficeID, req.OfficeNumber, addressID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE subscribers SET address_id = $1, post_office_id = $2 WHERE id = $3`,
		addressID, postOfficeID, id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteSubscriber удаляет абонента; телефоны и долги удаляются каскадно.
func (s *Storage) DeleteSubscriber(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteSubscriber"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscribers WHERE id = $1`
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

// SearchSubscribers ищет абонентов по LIKE-шаблону в ФИО, активных
// номерах и номере почтового отделения. Шаблон приходит уже
// переведённым из масок * и ?.
func (s *Storage) SearchSubscribers(ctx context.Context, like string) ([]*models.SubscriberRow, error) {
	const op = "storage.SearchSubscribers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT DISTINCT
				  s.id,
				  s.lastname,
				  s.firstname,
				  COALESCE(s.middlename, ''),
				  pn.number,
				  st.type,
				  st.name,
				  a.building,
				  a.apartment,
				  (` + fullAddressExpr + `) AS full_address,
				  po.office_number
			  FROM subscribers s
			  LEFT JOIN phone_numbers pn ON pn.subscriber_id = s.id AND pn.active = TRUE
			  LEFT JOIN addresses a ON a.id = s.address_id
			  LEFT JOIN streets st ON st.id = a.street_id
			  LEFT JOIN post_offices po ON po.id = s.post_office_id
			  WHERE s.lastname LIKE $1
				 OR s.firstname LIKE $1
				 OR s.middlename LIKE $1
				 OR pn.number LIKE $1
				 OR po.office_number::text LIKE $1
			  ORDER BY s.lastname, s.firstname`
	rows, err := s.DB.QueryContext(ctx, query, like)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.SubscriberRow
	for rows.Next() {
		var item models.SubscriberRow
		if err := rows.Scan(&item.ID, &item.Lastname, &item.Firstname, &item.Middlename,
			&item.MainPhone, &item.StreetType, &item.StreetName, &item.Building,
			&item.Apartment, &item.FullAddress, &item.OfficeNumber); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
