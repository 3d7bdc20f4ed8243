package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee status values stored in the status column.
const (
	EmployeeActive   = "Active"
	EmployeeInActive = "InActive"
)

// Employee is the HR profile the mobile app fetches after sign-in.
type Employee struct {
	EmpID        string          `json:"empId" gorm:"column:emp_id;size:64;primaryKey"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	Email        string          `json:"email,omitempty" gorm:"size:255;index"`
	Phone        string          `json:"phone,omitempty" gorm:"size:32"`
	Designation  string          `json:"designation,omitempty" gorm:"size:128"`
	Department   string          `json:"department,omitempty" gorm:"size:128"`
	Status       string          `json:"status" gorm:"size:16;not null;default:'Active';index"`
	InAppRole    string          `json:"inAppRole" gorm:"column:in_app_role;size:64;not null;default:'Employee'"`
	Company      string          `json:"company,omitempty" gorm:"size:64;index"`
	Branch       string          `json:"branch,omitempty" gorm:"size:128"`
	PhotoURL     string          `json:"photoUrl,omitempty" gorm:"size:512"`
	JoiningDate  *time.Time      `json:"joiningDate,omitempty"`
	GrossSalary  decimal.Decimal `json:"grossSalary" gorm:"type:decimal(12,2);default:0"`
	PasswordHash string          `json:"-" gorm:"size:255"` // Never expose in JSON
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
}

// IsActive reports whether the employee may use the app normally.
func (e *Employee) IsActive() bool {
	return e.Status != EmployeeInActive
}
