package models

import "time"

// Статусы заявки на смену номера. Одобренная заявка применяется и
// удаляется, отклонённая — просто удаляется; статус processing
// встречается в исторических данных и остаётся допустимым значением.
const (
	NumberChangeStatusNew        = "new"
	NumberChangeStatusProcessing = "processing"
	NumberChangeStatusDone       = "done"
)

// NumberChangeRequest — заявка абонента на замену телефонного номера.
type NumberChangeRequest struct {
	ID           int
	SubscriberID int
	OldNumber    string
	NewNumber    string
	DateRequest  time.Time
	Status       string
}

// NumberChangeRow — заявка с ФИО абонента для общего списка.
type NumberChangeRow struct {
	NumberChangeRequest
	Lastname   *string
	Firstname  *string
	Middlename *string
}

// CreateNumberChangeRequest — подача заявки на смену номера.
type CreateNumberChangeRequest struct {
	SubscriberID int    `json:"subscriber_id" validate:"required"`
	OldNumber    string `json:"old_number" validate:"required"`
	NewNumber    string `json:"new_number" validate:"required"`
}
