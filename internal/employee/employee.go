package employee

import "time"

// Employee is a staff record. JSON field names are camelCase to stay
// wire-compatible with the existing frontend.
type Employee struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"firstName" gorm:"column:first_name;not null"`
	LastName       string    `json:"lastName" gorm:"column:last_name;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Department     string    `json:"department" gorm:"not null"`
	Position       string    `json:"position" gorm:"not null"`
	Salary         *float64  `json:"salary,omitempty" gorm:"column:salary"`
	ProfilePicture *string   `json:"profilePicture" gorm:"column:profile_picture"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// DeleteResponse confirms a successful DELETE.
type DeleteResponse struct {
	Message string `json:"message"`
}
