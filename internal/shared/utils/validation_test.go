package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindingFixture struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=200"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestBindingErrorMessage(t *testing.T) {
	v := validator.New()

	t.Run("lists failing fields", func(t *testing.T) {
		err := v.Struct(bindingFixture{Email: "not-an-email", Name: "n", Password: "short"})
		require.Error(t, err)

		msg := BindingErrorMessage(err)
		assert.Contains(t, msg, "must be a valid email address")
		assert.Contains(t, msg, "must be at least 8 characters long")
	})

	t.Run("required fields named", func(t *testing.T) {
		err := v.Struct(bindingFixture{})
		require.Error(t, err)

		msg := BindingErrorMessage(err)
		assert.Contains(t, msg, "is required")
	})

	t.Run("non validator errors stay generic", func(t *testing.T) {
		assert.Equal(t, "invalid request body", BindingErrorMessage(errors.New("unexpected EOF")))
	})
}
