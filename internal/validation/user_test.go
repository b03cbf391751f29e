package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Valid", password: "WebSlinger1", wantErr: false},
		{name: "Too short", password: "Ab1", wantErr: true},
		{name: "No uppercase", password: "webslinger1", wantErr: true},
		{name: "No lowercase", password: "WEBSLINGER1", wantErr: true},
		{name: "No digit", password: "WebSlinger", wantErr: true},
		{name: "Empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "Valid", username: "comic_fan.99", wantErr: false},
		{name: "Too short", username: "ab", wantErr: true},
		{name: "Spaces", username: "comic fan", wantErr: true},
		{name: "Special chars", username: "fan@home", wantErr: true},
		{name: "Empty", username: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("fan@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("a b@example.com"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "fan@example.com", NormalizeEmail("  Fan@Example.COM "))
}
