package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsAuthenticated(t *testing.T) {
	assert.False(t, Session{}.IsAuthenticated())
	assert.False(t, Session{Token: "token-1"}.IsAuthenticated())
	assert.False(t, Session{User: &UserProfile{}}.IsAuthenticated())
	assert.True(t, Session{Token: "token-1", User: &UserProfile{}}.IsAuthenticated())
}

func TestAccountType_Valid(t *testing.T) {
	assert.True(t, AccountEmployee.Valid())
	assert.True(t, AccountVenue.Valid())
	assert.False(t, AccountType("admin").Valid())
	assert.False(t, AccountType("").Valid())
}

func TestUserProfile_DisplayName(t *testing.T) {
	tests := []struct {
		name    string
		profile *UserProfile
		want    string
	}{
		{
			name:    "nil profile",
			profile: nil,
			want:    "",
		},
		{
			name:    "empty data",
			profile: &UserProfile{},
			want:    "",
		},
		{
			name:    "personal name",
			profile: &UserProfile{Data: json.RawMessage(`{"nome":"Ana"}`)},
			want:    "Ana",
		},
		{
			name:    "venue name fallback",
			profile: &UserProfile{Data: json.RawMessage(`{"nome_restaurante":"Casa da Tia"}`)},
			want:    "Casa da Tia",
		},
		{
			name:    "personal name wins over venue name",
			profile: &UserProfile{Data: json.RawMessage(`{"nome":"Ana","nome_restaurante":"Casa da Tia"}`)},
			want:    "Ana",
		},
		{
			name:    "malformed data",
			profile: &UserProfile{Data: json.RawMessage(`nope`)},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.DisplayName())
		})
	}
}
