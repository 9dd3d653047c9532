package models

// Типы телефонных номеров. Порядок важен для выбора «основного»
// номера абонента: mobile предпочтительнее home, home — service.
const (
	PhoneTypeMobile  = "mobile"
	PhoneTypeHome    = "home"
	PhoneTypeService = "service"
)

// MobileOperator — мобильный оператор с кодом сети.
type MobileOperator struct {
	ID     int
	Name   string
	Prefix string
}

// PhoneNumber — телефонный номер. Служебные линии (спецслужбы)
// не принадлежат абоненту, поэтому SubscriberID допускает NULL.
type PhoneNumber struct {
	ID           int
	Number       string
	Type         string
	SubscriberID *int
	OperatorID   *int
	Active       bool
}

// PhoneInfo — номер с именем оператора для карточки абонента.
type PhoneInfo struct {
	ID           int
	Number       string
	Type         string
	OperatorName *string
	Active       bool
}

// CreatePhoneRequest — добавление номера абоненту.
type CreatePhoneRequest struct {
	Number     string `json:"number" validate:"required"`
	Type       string `json:"type" validate:"omitempty,oneof=mobile home service"`
	OperatorID *int   `json:"operator_id"`
}

// CreateOperatorRequest — добавление мобильного оператора.
type CreateOperatorRequest struct {
	Name   string `json:"name" validate:"required"`
	Prefix string `json:"prefix" validate:"required"`
}
