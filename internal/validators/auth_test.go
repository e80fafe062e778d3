// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-shell/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthValidator(t *testing.T) {
	require.NotNil(t, NewAuthValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewAuthValidator().Validate(context.Background(), struct{ Name string }{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Credential(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		wantErr FieldErrors
	}{
		{
			name: "valid value",
			obj:  models.Credential{Email: "a@b.c", Password: "x"},
		},
		{
			name: "valid pointer",
			obj:  &models.Credential{Email: "a@b.c", Password: "x"},
		},
		{
			name:    "missing password",
			obj:     models.Credential{Email: "a@b.c"},
			wantErr: FieldErrors{"password": {"required"}},
		},
		{
			name:    "both missing",
			obj:     models.Credential{},
			wantErr: FieldErrors{"email": {"required"}, "password": {"required"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAuthValidator().Validate(context.Background(), tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var fe FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantErr, fe)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestValidate_SignUpRequest(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.SignUpRequest{
		Email:    "not-an-email",
		Password: "x",
		Phone:    "012345678901234567890123",
	})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{"email"}, fe["email"])
	assert.Equal(t, []string{"max"}, fe["phone"])
	assert.NotContains(t, fe, "password")
}

func TestValidate_PartialFields(t *testing.T) {
	err := NewAuthValidator().Validate(context.Background(),
		models.PasswordResetRequest{Email: "a@b.c"}, "Email")

	assert.NoError(t, err)
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("email", "someone", "required"))

	err := Var("email", "", "required")
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldErrors{"email": {"required"}}, fe)
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"password": {"required"}, "email": {"required", "email"}}

	assert.Equal(t, "invalid data provided: email: required, email; password: required", fe.Error())
}
