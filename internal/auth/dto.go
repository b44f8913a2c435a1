package auth

import "github.com/frahmantamala/employee-management/internal"

// SignupDTO is the transport shape for POST /api/auth/signup.
type SignupDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginDTO is the transport shape for POST /api/auth/login.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields and returns a MissingField error on failure.
func (d SignupDTO) Validate() error {
	if d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Email and password are required", internal.ErrCodeMissingField)
	}
	return nil
}

func (d LoginDTO) Validate() error {
	if d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Email and password are required", internal.ErrCodeMissingField)
	}
	return nil
}
