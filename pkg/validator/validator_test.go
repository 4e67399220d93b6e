package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		fields   []string
	}{
		{"valid", "alice", "alice@example.com", "pw1", nil},
		{"missing username", "", "alice@example.com", "pw1", []string{"username"}},
		{"missing email", "alice", "", "pw1", []string{"email"}},
		{"bad email", "alice", "not-an-email", "pw1", []string{"email"}},
		{"missing password", "alice", "alice@example.com", "", []string{"password"}},
		{"everything missing", "", "", "", []string{"username", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(tt.username, tt.email, tt.password)
			assert.Equal(t, len(tt.fields) > 0, errs.HasErrors())
			for _, field := range tt.fields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidateLogin("alice", "pw1").HasErrors())
	assert.Contains(t, ValidateLogin("", "pw1"), "username")
	assert.Contains(t, ValidateLogin("alice", ""), "password")
}
