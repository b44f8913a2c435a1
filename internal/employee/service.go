package employee

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal"
)

// Repository defines the data access methods for employees.
type Repository interface {
	Create(employee *Employee) error
	GetAll() ([]*Employee, error)
	Search(query SearchQuery) ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	Update(employee *Employee) error
	Delete(id int64) error
}

// Service handles employee business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates required fields and persists a new record. picturePath
// is the already-stored upload path, or nil when no file was attached.
func (s *Service) Create(dto *EmployeeFormDTO, picturePath *string) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	emp := &Employee{
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Department:     dto.Department,
		Position:       dto.Position,
		Salary:         dto.Salary,
		ProfilePicture: picturePath,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(emp); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return nil, appErr
		}
		s.logger.Error("failed to create employee", "error", err)
		return nil, internal.NewInternalError("Server error", err)
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "department", emp.Department)

	return emp, nil
}

// GetAll returns every employee, most recently created first.
func (s *Service) GetAll() ([]*Employee, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("Server error", err)
	}
	return employees, nil
}

// Search filters by department and/or position; empty filters match all.
func (s *Service) Search(query SearchQuery) ([]*Employee, error) {
	employees, err := s.repo.Search(query)
	if err != nil {
		s.logger.Error("failed to search employees", "error", err,
			"department", query.Department, "position", query.Position)
		return nil, internal.NewInternalError("Server error", err)
	}
	return employees, nil
}

// GetByID returns one record or ErrEmployeeNotFound.
func (s *Service) GetByID(id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, internal.ErrEmployeeNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("Server error", err)
	}
	return emp, nil
}

// Update replaces the six writable fields with whatever the request
// supplied, empty values included. Omitted fields blank out the stored
// value rather than being skipped. The profile picture is the exception:
// it only changes when a new file arrived, and the previous file stays on
// disk untouched.
func (s *Service) Update(id int64, dto *EmployeeFormDTO, newPicturePath *string) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, internal.ErrEmployeeNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to load employee for update", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("Server error", err)
	}

	emp.FirstName = dto.FirstName
	emp.LastName = dto.LastName
	emp.Email = dto.Email
	emp.Department = dto.Department
	emp.Position = dto.Position
	emp.Salary = dto.Salary
	if newPicturePath != nil {
		emp.ProfilePicture = newPicturePath
	}
	emp.UpdatedAt = time.Now()

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("Server error", err)
	}

	s.logger.Info("employee updated", "employee_id", id)

	return emp, nil
}

// Delete removes the record. The associated image file, if any, is left
// on disk.
func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, internal.ErrEmployeeNotFound) {
			return internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return internal.NewInternalError("Server error", err)
	}

	s.logger.Info("employee deleted", "employee_id", id)

	return nil
}
