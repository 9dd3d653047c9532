package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Role
	}{
		{name: "admin", raw: "admin", want: RoleAdmin},
		{name: "operator", raw: "operator", want: RoleOperator},
		{name: "user", raw: "user", want: RoleUser},
		{name: "guest", raw: "guest", want: RoleGuest},
		{name: "unknown string falls back to guest", raw: "superadmin", want: RoleGuest},
		{name: "empty string falls back to guest", raw: "", want: RoleGuest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.raw))
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleOperator))
	assert.True(t, RoleOperator.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(RoleGuest))
	assert.True(t, RoleUser.AtLeast(RoleUser))

	assert.False(t, RoleGuest.AtLeast(RoleUser))
	assert.False(t, RoleUser.AtLeast(RoleOperator))
	assert.False(t, RoleOperator.AtLeast(RoleAdmin))
}

func TestRole_OneOf(t *testing.T) {
	assert.True(t, RoleOperator.OneOf(RoleOperator, RoleAdmin))
	assert.False(t, RoleUser.OneOf(RoleOperator, RoleAdmin))
}
