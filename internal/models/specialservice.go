package models

// SpecialService — экстренная или справочная служба с выделенным
// служебным номером и графиком приёма.
type SpecialService struct {
	ID          int
	Name        string
	PhoneID     *int
	Description *string
	Weekday     *string
	TimeStart   *string
	TimeEnd     *string
}

// SpecialServiceRow — служба вместе с номером телефона для списков.
type SpecialServiceRow struct {
	SpecialService
	Number *string
}

// CreateSpecialServiceRequest — регистрация службы: служебный номер
// создаётся вместе с записью.
type CreateSpecialServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Number      string `json:"number" validate:"required"`
	Description string `json:"description"`
	Weekday     string `json:"weekday"`
	TimeStart   string `json:"time_start"`
	TimeEnd     string `json:"time_end"`
}
