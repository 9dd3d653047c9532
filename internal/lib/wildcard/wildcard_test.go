package wildcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLike(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "звёздочка в конце", pattern: "Кова*", want: "Кова%"},
		{name: "вопрос вместо одного символа", pattern: "Коваль?", want: "Коваль_"},
		{name: "без метасимволов", pattern: "Петренко", want: "Петренко"},
		{name: "экранирование процентов", pattern: "100%", want: "100\\%"},
		{name: "экранирование подчёркивания", pattern: "office_58", want: "office\\_58"},
		{name: "пустой шаблон", pattern: "", want: ""},
		{name: "смешанный шаблон", pattern: "05?12*", want: "05_12%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToLike(tt.pattern))
		})
	}
}
