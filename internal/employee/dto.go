package employee

import (
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal"
)

// EmployeeFormDTO carries the writable fields of an employee as submitted
// in a multipart form. The profile picture travels separately as a file
// part and never appears here.
type EmployeeFormDTO struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
	Position   string
	Salary     *float64
}

// ParseEmployeeForm reads the form fields off an already-parsed request.
func ParseEmployeeForm(r *http.Request) (*EmployeeFormDTO, error) {
	dto := &EmployeeFormDTO{
		FirstName:  r.FormValue("firstName"),
		LastName:   r.FormValue("lastName"),
		Email:      r.FormValue("email"),
		Department: r.FormValue("department"),
		Position:   r.FormValue("position"),
	}

	if raw := r.FormValue("salary"); raw != "" {
		salary, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, internal.NewValidationError("salary must be a number", internal.ErrCodeMissingField)
		}
		dto.Salary = &salary
	}

	return dto, nil
}

// Validate enforces the required fields for create. Updates skip this:
// there every field is optional at the transport layer.
func (d *EmployeeFormDTO) Validate() error {
	if d.FirstName == "" || d.LastName == "" || d.Email == "" || d.Department == "" || d.Position == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingField)
	}
	return nil
}

// SearchQuery holds the optional exact-match filters for GET /search.
// An empty field imposes no constraint.
type SearchQuery struct {
	Department string
	Position   string
}
