package models

import "time"

// RepairWork — ремонтные работы на линии по конкретному адресу.
type RepairWork struct {
	ID          int
	AddressID   int
	DateStart   time.Time
	DateEnd     time.Time
	Description string
}

// RepairRow — ремонт с развёрнутым адресом для списков и поиска.
type RepairRow struct {
	RepairWork
	StreetName *string
	StreetType *string
	Building   *string
	Apartment  *string
}

// CreateRepairRequest — регистрация ремонтных работ: адрес создаётся
// вместе с записью о ремонте.
type CreateRepairRequest struct {
	AddressFields
	DateStart   string `json:"date_start" validate:"required,datetime=2006-01-02"`
	DateEnd     string `json:"date_end" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
}

// UpdateRepairRequest — правка ремонта и его адреса.
type UpdateRepairRequest struct {
	AddressFields
	DateStart   string `json:"date_start" validate:"required,datetime=2006-01-02"`
	DateEnd     string `json:"date_end" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
}
