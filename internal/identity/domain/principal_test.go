package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("librarian")
	assert.NoError(t, err)
	assert.Equal(t, RoleLibrarian, role)

	// Ausente => rol por defecto
	role, err = ParseRole("")
	assert.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	_, err = ParseRole("superadmin")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
