package models

// User представляет учётную запись сотрудника или абонента в системе.
type User struct {
	UID          string // Уникальный идентификатор пользователя
	Login        string // Логин (уникальный)
	PasswordHash string // bcrypt-хэш пароля
	Role         Role   // Роль пользователя
}

// Статусы заявки на регистрацию. Заявка создаётся в статусе new и
// переводится администратором в approved либо rejected.
const (
	RegistrationStatusNew      = "new"
	RegistrationStatusApproved = "approved"
	RegistrationStatusRejected = "rejected"
)

// RegistrationRequest — заявка гостя на создание учётной записи.
// Пароль хранится сразу в виде хэша; при одобрении хэш переносится
// в users без изменений.
type RegistrationRequest struct {
	ID           int
	Login        string
	PasswordHash string
	Status       string
}

// LoginRequest — данные формы входа.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest — данные заявки на доступ от гостя.
type RegisterRequest struct {
	Login    string `json:"login" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
}

// CreateUserRequest — создание пользователя администратором напрямую,
// минуя заявку на регистрацию.
type CreateUserRequest struct {
	Login    string `json:"login" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=admin operator user guest"`
}

// UpdateRoleRequest — смена роли существующего пользователя.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin operator user guest"`
}
