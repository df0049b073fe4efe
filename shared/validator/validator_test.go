package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boothdesk/shared/failure"
	"boothdesk/shared/validator"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type boothForm struct {
	Number   int    `validate:"required,gte=1"`
	Category string `validate:"omitempty,oneof=diamond gold silver other"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		run     func() error
		wantErr bool
		wantMsg string
	}{
		{
			name: "valid login form",
			run: func() error {
				return validator.ValidateStruct(&loginForm{Username: "admin", Password: "secret"})
			},
			wantErr: false,
		},
		{
			name: "missing username",
			run: func() error {
				return validator.ValidateStruct(&loginForm{Password: "secret"})
			},
			wantErr: true,
			wantMsg: "Username is required",
		},
		{
			name: "missing booth number",
			run: func() error {
				return validator.ValidateStruct(&boothForm{Category: "gold"})
			},
			wantErr: true,
			wantMsg: "Number is required",
		},
		{
			name: "category outside enumeration",
			run: func() error {
				return validator.ValidateStruct(&boothForm{Number: 3, Category: "platinum"})
			},
			wantErr: true,
			wantMsg: "Category must be one of diamond gold silver other",
		},
		{
			name: "blank category is allowed",
			run: func() error {
				return validator.ValidateStruct(&boothForm{Number: 3})
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.True(t, failure.IsKind(err, failure.KindValidation))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("admin", "required"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
