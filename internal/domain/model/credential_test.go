package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredential_Masked(t *testing.T) {
	tests := []struct {
		secret string
		want   string
	}{
		{"", "****"},
		{"short", "****"},
		{"12345678", "****"},
		{"sk-abcdefghijklmnopqrstuvwxyz", "sk-a...wxyz"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Credential{Secret: tt.secret}.Masked(), "secret %q", tt.secret)
	}
}

func TestValidationResult(t *testing.T) {
	assert.True(t, ValidationOK.Valid())
	assert.Equal(t, CredentialStatusValid, ValidationOK.Status())
	assert.True(t, ValidationResult{}.Valid(), "zero value passes")

	failed := ValidationFailed(ValidationFailureRejected)
	assert.False(t, failed.Valid())
	assert.Equal(t, CredentialStatusInvalid, failed.Status())
	assert.Equal(t, ValidationFailureRejected, failed.Failure)
}
