package postgres

import (
	"errors"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

// Create saves a new employee. A duplicate email trips the unique index
// and surfaces as the conflict error.
func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	if err := r.db.Create(emp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.NewConflictError("Employee email already exists", internal.ErrCodeEmailTaken)
		}
		return err
	}
	return nil
}

// GetAll returns every employee, newest first.
func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Order("created_at DESC").Find(&employees).Error
	return employees, err
}

// Search applies exact-match filters; empty filters are skipped.
func (r *EmployeeRepository) Search(query employee.SearchQuery) ([]*employee.Employee, error) {
	tx := r.db.Order("created_at DESC")
	if query.Department != "" {
		tx = tx.Where("department = ?", query.Department)
	}
	if query.Position != "" {
		tx = tx.Where("position = ?", query.Position)
	}

	var employees []*employee.Employee
	err := tx.Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	return r.db.Save(emp).Error
}

func (r *EmployeeRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&employee.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}
