package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// Готовые шаблоны отчётов с украинскими подписями колонок.
// Подписи задаются псевдонимами в самих запросах и читаются из
// метаданных результата.
var reportTemplates = map[int]string{
	1: `SELECT
			name AS "Назва служби",
			weekday AS "Дні роботи",
			time_start AS "Початок прийому",
			time_end AS "Кінець прийому"
		FROM special_services
		ORDER BY name`,
	2: `SELECT
			s.lastname AS "Прізвище",
			s.firstname AS "Ім’я",
			s.middlename AS "По батькові",
			r.old_number AS "Старий номер",
			r.new_number AS "Новий номер",
			r.date_request AS "Дата заявки"
		FROM number_change_requests r
		JOIN subscribers s ON s.id = r.subscriber_id
		ORDER BY r.date_request DESC`,
	3: `SELECT
			st.type || '. ' || st.name AS "Вулиця",
			a.building AS "Будинок",
			a.apartment AS "Квартира",
			rw.date_start AS "Початок ремонту",
			rw.date_end AS "Кінець ремонту",
			rw.description AS "Опис робіт"
		FROM repair_works rw
		JOIN addresses a ON a.id = rw.address_id
		JOIN streets st ON st.id = a.street_id
		ORDER BY rw.date_start`,
	4: `SELECT
			ss.name AS "Назва служби",
			pn.number AS "Телефон"
		FROM special_services ss
		JOIN phone_numbers pn ON pn.id = ss.phone_id
		ORDER BY ss.name`,
	5: `SELECT
			s.lastname AS "Прізвище",
			s.firstname AS "Ім’я",
			s.middlename AS "По батькові"
		FROM subscribers s
		WHERE s.lastname LIKE $1 AND s.firstname LIKE $2`,
	6: `SELECT
			mo.name AS "Оператор",
			COUNT(pn.id) AS "Кількість абонентів"
		FROM phone_numbers pn
		JOIN mobile_operators mo ON mo.id = pn.operator_id
		WHERE pn.active = TRUE
		GROUP BY mo.id
		ORDER BY COUNT(pn.id) DESC`,
	7: `SELECT
			s.lastname AS "Прізвище",
			s.firstname AS "Ім’я",
			s.middlename AS "По батькові",
			SUM(d.amount) AS "Загальна заборгованість"
		FROM debts d
		JOIN subscribers s ON s.id = d.subscriber_id
		WHERE d.status = 'active'
		GROUP BY s.id
		ORDER BY SUM(d.amount) DESC`,
	8: `SELECT
			s.lastname AS "Прізвище",
			s.firstname AS "Ім’я",
			s.middlename AS "По батькові",
			r.old_number AS "Старий номер",
			r.new_number AS "Новий номер",
			st.type || '. ' || st.name || ' ' || a.building ||
				CASE WHEN a.apartment IS NOT NULL
					 THEN ', кв. ' || a.apartment
					 ELSE '' END AS "Поточна адреса"
		FROM number_change_requests r
		JOIN subscribers s ON s.id = r.subscriber_id
		JOIN addresses a ON a.id = s.address_id
		JOIN streets st ON st.id = a.street_id
		ORDER BY r.date_request DESC`,
	9: `SELECT
			s.lastname AS "Прізвище",
			s.firstname AS "Ім’я",
			s.middlename AS "По батькові",
			st.type AS "Тип вулиці",
			st.name AS "Назва вулиці",
			a.building AS "Будинок",
			a.apartment AS "Квартира"
		FROM subscribers s
		JOIN addresses a ON a.id = s.address_id
		JOIN streets st ON st.id = a.street_id
		WHERE st.name LIKE $1
		ORDER BY s.lastname, s.firstname`,
	10: `SELECT
			st.type || '. ' || st.name AS "Вулиця",
			COUNT(s.id) AS "Кількість мешканців"
		FROM subscribers s
		JOIN addresses a ON a.id = s.address_id
		JOIN streets st ON st.id = a.street_id
		GROUP BY st.id
		ORDER BY COUNT(s.id) DESC`,
}

// RunReportTemplate выполняет готовый отчёт по его номеру.
// Шаблоны 5 и 9 параметризованы префиксами и возвращают итог
// по количеству строк. Неизвестный номер — пустой результат.
func (s *Storage) RunReportTemplate(ctx context.Context, templateID int, params models.ReportParams) (*models.ReportResult, error) {
	const op = "storage.RunReportTemplate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query, ok := reportTemplates[templateID]
	if !ok {
		return &models.ReportResult{Columns: []string{}, Rows: [][]any{}}, nil
	}

	var args []any
	switch templateID {
	case 5:
		args = []any{params.Lastname + "%", params.Firstname + "%"}
	case 9:
		args = []any{params.StreetName + "%"}
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := collectReportRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if templateID == 5 || templateID == 9 {
		total := len(result.Rows)
		result.Total = &total
	}
	return result, nil
}

// RunCustomQuery выполняет произвольный SQL в транзакции только для
// чтения; транзакция всегда откатывается, ошибки базы передаются
// вызывающему без обёртки в пустой результат.
func (s *Storage) RunCustomQuery(ctx context.Context, sqlText string) (*models.ReportResult, error) {
	const op = "storage.RunCustomQuery"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rows, err := tx.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := collectReportRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// collectReportRows собирает произвольный результат запроса в таблицу:
// имена колонок из метаданных, значения нормализованы для JSON.
func collectReportRows(rows *sql.Rows) (*models.ReportResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &models.ReportResult{
		Columns: columns,
		Rows:    [][]any{},
	}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		for i, v := range values {
			switch typed := v.(type) {
			case []byte:
				values[i] = string(typed)
			case time.Time:
				values[i] = typed.Format("2006-01-02")
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
