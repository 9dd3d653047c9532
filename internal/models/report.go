package models

// ReportResult — табличный результат отчёта: подписи колонок,
// строки значений и необязательный итог по количеству строк.
type ReportResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Total   *int     `json:"total,omitempty"`
}

// ReportParams — параметры параметризованных шаблонов отчётов.
// Пустое значение означает отсутствие фильтра по этому полю.
type ReportParams struct {
	Lastname   string `json:"lastname"`
	Firstname  string `json:"firstname"`
	StreetName string `json:"street_name"`
}

// CustomQueryRequest — произвольный SQL-запрос администратора.
type CustomQueryRequest struct {
	SQL string `json:"sql" validate:"required"`
}
