package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("admin123"))

	assert.NotEqual(t, "admin123", u.PasswordHash)
	assert.True(t, u.CheckPassword("admin123"))
	assert.False(t, u.CheckPassword("admin124"))
	assert.False(t, u.CheckPassword(""))
}

func TestUserWithoutHashNeverMatches(t *testing.T) {
	u := User{Email: "nobody@demo.com"}
	assert.False(t, u.CheckPassword(""))
}

func TestIsSuperAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleSuperAdmin}).IsSuperAdmin())
	assert.False(t, (&User{Role: RoleAdmin}).IsSuperAdmin())
	assert.False(t, (&User{Role: "SuperAdmin"}).IsSuperAdmin())
}
