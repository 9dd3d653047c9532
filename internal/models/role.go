// Package models содержит доменные структуры реестра абонентов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Role — закрытое перечисление ролей пользователей системы.
// Роли упорядочены по возрастанию привилегий: guest < user < operator < admin.
// Проверка прав выполняется только на границе (middleware), слой доступа
// к данным о ролях ничего не знает.
type Role string

const (
	// RoleGuest — неавторизованный посетитель.
	RoleGuest Role = "guest"
	// RoleUser — обычный пользователь, созданный через одобренную заявку.
	RoleUser Role = "user"
	// RoleOperator — оператор, ведущий записи реестра.
	RoleOperator Role = "operator"
	// RoleAdmin — администратор, управляющий пользователями и заявками.
	RoleAdmin Role = "admin"
)

// roleLevel задаёт частичный порядок привилегий.
var roleLevel = map[Role]int{
	RoleGuest:    0,
	RoleUser:     1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

// ParseRole переводит строку в Role. Неизвестные значения
// трактуются как guest: отсутствие роли — не ошибка, а минимум прав.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := roleLevel[r]; !ok {
		return RoleGuest
	}
	return r
}

// Valid сообщает, входит ли значение в перечисление ролей.
func (r Role) Valid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast сообщает, имеет ли роль привилегии не ниже других.
func (r Role) AtLeast(other Role) bool {
	return roleLevel[r] >= roleLevel[other]
}

// OneOf сообщает, входит ли роль в явный список допустимых.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
