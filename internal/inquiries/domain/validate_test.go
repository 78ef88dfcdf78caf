package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() NewInquiryInput {
	return NewInquiryInput{
		Name:    "  Ravi Kumar ",
		Email:   " Ravi@Example.COM ",
		Phone:   "+91 98765 43210",
		Company: "Kumar Agro",
		Service: Services[0],
		Message: "Need a rooftop system for our cold storage unit.",
	}
}

func TestValidate_OK(t *testing.T) {
	in := validInput()
	require.NoError(t, in.Validate())
	assert.Equal(t, "Ravi Kumar", in.Name)
	assert.Equal(t, "ravi@example.com", in.Email)
}

func TestValidate_OptionalFields(t *testing.T) {
	in := validInput()
	in.Phone = ""
	in.Company = ""
	in.Service = ""
	assert.NoError(t, in.Validate())
}

func TestValidate_Fields(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*NewInquiryInput)
		field string
	}{
		{"missing name", func(in *NewInquiryInput) { in.Name = " " }, "name"},
		{"short name", func(in *NewInquiryInput) { in.Name = "R" }, "name"},
		{"long name", func(in *NewInquiryInput) { in.Name = strings.Repeat("x", 121) }, "name"},
		{"missing email", func(in *NewInquiryInput) { in.Email = "" }, "email"},
		{"email without at", func(in *NewInquiryInput) { in.Email = "ravi.example.com" }, "email"},
		{"email without dot", func(in *NewInquiryInput) { in.Email = "ravi@localhost" }, "email"},
		{"email with space", func(in *NewInquiryInput) { in.Email = "ra vi@example.com" }, "email"},
		{"phone letters", func(in *NewInquiryInput) { in.Phone = "call me maybe" }, "phone"},
		{"phone short", func(in *NewInquiryInput) { in.Phone = "12345" }, "phone"},
		{"unknown service", func(in *NewInquiryInput) { in.Service = "Wind turbines" }, "service"},
		{"long company", func(in *NewInquiryInput) { in.Company = strings.Repeat("c", 161) }, "company"},
		{"missing message", func(in *NewInquiryInput) { in.Message = "" }, "message"},
		{"short message", func(in *NewInquiryInput) { in.Message = "hi" }, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)

			err := in.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInquiry))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "is required", "email": "is required"}}
	assert.Equal(t, "invalid inquiry: email: is required, name: is required", err.Error())
}
