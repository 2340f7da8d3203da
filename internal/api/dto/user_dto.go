package dto

import "github.com/corpkit/company-portal/internal/domain"

// LoginRequest payload for login. Fields stay untyped so a JSON number or bool is a failed
// login rather than a decode error.
type LoginRequest struct {
	Email    any `json:"email"`
	Password any `json:"password"`
}

// Credentials returns the email and password when both are strings.
func (r LoginRequest) Credentials() (email, password string, ok bool) {
	email, emailOK := r.Email.(string)
	password, passwordOK := r.Password.(string)
	return email, password, emailOK && passwordOK
}

// Present reports whether both fields carry a non-empty value. null, "", 0, false and empty
// arrays or objects count as absent.
func (r LoginRequest) Present() bool {
	return present(r.Email) && present(r.Password)
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0
	case bool:
		return val
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}
	return true
}

// UserResponse is the public view of an identity.
type UserResponse struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	Name  string      `json:"name"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// VerifyResponse echoes the verified claims of the caller.
type VerifyResponse struct {
	Valid bool `json:"valid"`
	User  any  `json:"user"`
}
