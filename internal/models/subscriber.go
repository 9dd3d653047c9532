package models

// Subscriber — абонент: владелец номеров, адреса и долгов.
// Адрес и почтовое отделение необязательны: при удалении адреса
// ссылка обнуляется, а не повисает.
type Subscriber struct {
	ID           int
	Lastname     string
	Firstname    string
	Middlename   string
	AddressID    *int
	PostOfficeID *int
}

// SubscriberRow — строка общего списка абонентов: основной активный
// номер, собранный локализованный адрес и номер отделения.
type SubscriberRow struct {
	ID           int
	Lastname     string
	Firstname    string
	Middlename   string
	MainPhone    *string
	StreetType   *string
	StreetName   *string
	Building     *string
	Apartment    *string
	FullAddress  *string
	OfficeNumber *int
}

// SubscriberDetails — карточка абонента с развёрнутым адресом
// и отделением для формы редактирования.
type SubscriberDetails struct {
	Subscriber
	StreetName   *string
	StreetType   *string
	Building     *string
	Apartment    *string
	OfficeNumber *int
}

// CreateSubscriberRequest — создание абонента. Адрес передаётся
// опционально: без улицы и дома абонент создаётся без адреса.
type CreateSubscriberRequest struct {
	Lastname   string `json:"lastname" validate:"required"`
	Firstname  string `json:"firstname" validate:"required"`
	Middlename string `json:"middlename"`
	StreetName string `json:"street_name"`
	StreetType string `json:"street_type"`
	Building   string `json:"building"`
	Apartment  string `json:"apartment"`
}

// UpdateSubscriberRequest — редактирование абонента вместе с адресом
// и почтовым отделением (upsert по существующим ссылкам).
type UpdateSubscriberRequest struct {
	Lastname     string `json:"lastname" validate:"required"`
	Firstname    string `json:"firstname" validate:"required"`
	Middlename   string `json:"middlename"`
	StreetName   string `json:"street_name" validate:"required"`
	StreetType   string `json:"street_type" validate:"required"`
	Building     string `json:"building" validate:"required"`
	Apartment    string `json:"apartment"`
	OfficeNumber int    `json:"office_number" validate:"required"`
}
