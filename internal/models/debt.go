package models

import "time"

// Статусы долга. В агрегации должников участвуют только active.
const (
	DebtStatusActive = "active"
	DebtStatusPaid   = "paid"
)

// Debt — задолженность абонента за услуги связи.
type Debt struct {
	ID           int
	SubscriberID int
	Amount       float64
	DateStart    time.Time
	Deadline     *time.Time
	Status       string
}

// DebtorTotal — строка отчёта «абоненты с задолженностью»:
// сумма активных долгов на абонента, по убыванию.
type DebtorTotal struct {
	SubscriberID int
	Lastname     string
	Firstname    string
	Middlename   string
	TotalDebt    float64
}

// DebtorRow — долг вместе с ФИО абонента для поиска по должникам.
type DebtorRow struct {
	Lastname   string
	Firstname  string
	Middlename string
	Amount     float64
	DateStart  time.Time
	Deadline   *time.Time
	Status     string
}

// OverdueDebt — активный долг с истёкшим сроком, предмет уведомления.
type OverdueDebt struct {
	DebtID     int
	Lastname   string
	Firstname  string
	Middlename string
	Amount     float64
	Deadline   time.Time
}

// CreateDebtRequest — добавление долга абоненту. Даты приходят
// строками в формате 2006-01-02 и парсятся вручную.
type CreateDebtRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	DateStart string  `json:"date_start"`
	Deadline  string  `json:"deadline"`
}

// UpdateDebtRequest — изменение суммы и статуса долга.
type UpdateDebtRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Status string  `json:"status" validate:"required,oneof=active paid"`
}
