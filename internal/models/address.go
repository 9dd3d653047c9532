package models

// Street — улица; адреса ссылаются на неё по street_id.
// Пара (name, type) уникальна логически: поиск-или-создание
// не плодит дубликатов.
type Street struct {
	ID   int
	Name string // Например "Шевченка"
	Type string // Например "вул." или "проспект."
}

// Address — дом и квартира на конкретной улице.
type Address struct {
	ID        int
	StreetID  int
	Building  string
	Apartment string // Пустая строка — частный дом без квартиры
}

// AddressInfo — адрес вместе с развёрнутой улицей, как его отдают
// объединённые запросы хранилища.
type AddressInfo struct {
	ID         int
	StreetName string
	StreetType string
	Building   string
	Apartment  string
}

// PostOffice — почтовое отделение, обслуживающее абонентов.
// Привязка к адресу необязательна.
type PostOffice struct {
	ID           int
	OfficeNumber int
	AddressID    *int
}

// PostOfficeInfo — отделение с развёрнутым адресом для списков.
type PostOfficeInfo struct {
	ID           int
	OfficeNumber int
	StreetName   *string
	StreetType   *string
	Building     *string
	Apartment    *string
}

// AddressFields — адресные поля форм создания и редактирования.
// Используются при создании абонента и ремонтных работ.
type AddressFields struct {
	StreetName string `json:"street_name" validate:"required"`
	StreetType string `json:"street_type" validate:"required"`
	Building   string `json:"building" validate:"required"`
	Apartment  string `json:"apartment"`
}
