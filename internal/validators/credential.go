// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldService  = "service"
	FieldUsername = "username"
	FieldPassword = "password"
)

type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate checks a models.Credential. With no fields every field is
// checked. Passwords may contain any character; service and username may
// not contain control characters since they are printed back verbatim.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldService:
			err = validateName(c.Service, ErrEmptyService)
		case FieldUsername:
			err = validateName(c.Username, ErrEmptyUsername)
		case FieldPassword:
			if c.Password == "" {
				err = ErrEmptyPassword
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateName(s string, emptyErr error) error {
	if strings.TrimSpace(s) == "" {
		return emptyErr
	}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: %q", ErrControlChars, s)
	}
	return nil
}
