package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoSession = errors.New("no session")

// Claims representa al usuario de la sesión actual.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

type sessionBlob struct {
	ID    json.RawMessage `json:"id"`
	Email string          `json:"email"`
	Role  string          `json:"role"`
}

// ParseSession decodifica el blob de sesión guardado por el login.
// El id puede venir como número o como string.
func ParseSession(blob string) (Claims, error) {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return Claims{}, ErrNoSession
	}
	var s sessionBlob
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return Claims{}, fmt.Errorf("invalid session: %w", err)
	}

	id := strings.TrimSpace(string(s.ID))
	if strings.HasPrefix(id, `"`) {
		var str string
		if err := json.Unmarshal(s.ID, &str); err != nil {
			return Claims{}, fmt.Errorf("invalid session id: %w", err)
		}
		id = strings.TrimSpace(str)
	}
	if id == "" || id == "null" {
		return Claims{}, errors.New("session missing user id")
	}
	return Claims{UserID: id, Email: strings.TrimSpace(s.Email), Role: strings.TrimSpace(s.Role)}, nil
}
