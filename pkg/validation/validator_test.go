package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"First.Last@Example.COM",
		"user+tag@mail.example.co.uk",
		"a_b-c@sub-domain.example.org",
	}
	for _, e := range valid {
		require.True(t, IsEmail(e), e)
	}

	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"user@localhost",
		"user@exa~mple.com",
		"@example.com",
		"user@",
		" user@example.com",
		"user@example.com ",
		"user@@example.com",
		// IP literals and IDN domains are not accepted
		"user@[127.0.0.1]",
		"user@b\u00fccher.de",
	}
	for _, e := range invalid {
		require.False(t, IsEmail(e), e)
	}
}

func TestToDetails(t *testing.T) {
	type req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"min=8"`
	}
	v := validator.New()
	err := v.Struct(req{Email: "nope", Password: "short"})
	require.Error(t, err)

	details := ToDetails(err)
	require.Equal(t, "must be a valid email", details["Email"])
	require.Equal(t, "must be at least 8 characters long", details["Password"])

	var target map[string]any
	jsonErr := json.Unmarshal([]byte(`{"email":`), &target)
	require.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(jsonErr))

	require.Nil(t, ToDetails(nil))
}
