package entity

import "encoding/json"

// AccountType selects which login endpoint a credential belongs to.
type AccountType string

const (
	// AccountEmployee authenticates against /auth/funcionario.
	AccountEmployee AccountType = "funcionario"

	// AccountVenue authenticates against /auth/restaurante.
	AccountVenue AccountType = "restaurante"
)

// Valid reports whether the account type names a known login endpoint.
func (t AccountType) Valid() bool {
	return t == AccountEmployee || t == AccountVenue
}

// UserProfile is the identity record returned by the auth endpoints. The
// backend keeps its shape loose, so everything beyond the routing fields is
// retained verbatim in Data.
type UserProfile struct {
	Type    string          `json:"tipo,omitempty"`
	IsAdmin bool            `json:"isAdmin,omitempty"`
	Data    json.RawMessage `json:"dados,omitempty"`
}

// DisplayName extracts the human name from the loose identity payload,
// preferring the personal name over the venue name.
func (p *UserProfile) DisplayName() string {
	if p == nil || len(p.Data) == 0 {
		return ""
	}
	var dados struct {
		Nome            string `json:"nome"`
		NomeRestaurante string `json:"nome_restaurante"`
	}
	if err := json.Unmarshal(p.Data, &dados); err != nil {
		return ""
	}
	if dados.Nome != "" {
		return dados.Nome
	}

	return dados.NomeRestaurante
}

// Session is the current credential and identity pair. The zero value is the
// logged-out state.
type Session struct {
	Token string       `json:"token,omitempty"`
	User  *UserProfile `json:"user,omitempty"`
}

// IsAuthenticated holds exactly when both credential and identity are
// present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}
