// Package wildcard переводит пользовательские шаблоны поиска в синтаксис
// SQL LIKE. Операторы формы принимают `*` (любая последовательность символов)
// и `?` (ровно один символ); хранилище понимает `%` и `_`.
package wildcard

import "strings"

// ToLike переводит шаблон с `*`/`?` в шаблон LIKE с `%`/`_`.
// Символы `%`, `_` и `\` из исходной строки экранируются, чтобы
// пользовательский ввод не превращался в непрошенные метасимволы.
func ToLike(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteByte('%')
		case '?':
			b.WriteByte('_')
		case '%', '_', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
