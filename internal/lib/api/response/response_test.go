package response

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `validate:"required,email"`
	Activity string `validate:"required"`
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		form     signupForm
		expected string
	}{
		{
			name:     "Missing both",
			form:     signupForm{},
			expected: "field Email is a required field, field Activity is a required field",
		},
		{
			name:     "Bad email",
			form:     signupForm{Email: "not-an-email", Activity: "Chess Club"},
			expected: "field Email is not a valid email",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validator.New().Struct(tc.form)
			require.Error(t, err)

			var validateErr validator.ValidationErrors
			require.True(t, errors.As(err, &validateErr))

			resp := ValidationError(validateErr)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tc.expected, resp.Error)
		})
	}
}

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: "OK"}, OK())
	assert.Equal(t, Response{Status: "Error", Error: "boom"}, Error("boom"))
}
