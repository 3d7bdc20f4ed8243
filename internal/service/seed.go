package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
)

// ErrSeedMissingID is returned for seed rows without an employee id.
var ErrSeedMissingID = errors.New("seed row has no empId")

// SeedRow is one employee as it appears in a seed file or request.
type SeedRow struct {
	EmpID       string `json:"empId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Status      string `json:"status"`
	InAppRole   string `json:"inAppRole"`
	Company     string `json:"company"`
	Branch      string `json:"branch"`
	PhotoURL    string `json:"photoUrl"`
	JoiningDate string `json:"joiningDate"` // YYYY-MM-DD
	GrossSalary string `json:"grossSalary"`
	Password    string `json:"password"`
}

// ToSeedEmployee validates the row and converts it.
func (r SeedRow) ToSeedEmployee() (SeedEmployee, error) {
	empID := strings.TrimSpace(r.EmpID)
	if empID == "" {
		return SeedEmployee{}, ErrSeedMissingID
	}

	switch r.Status {
	case "", model.EmployeeActive, model.EmployeeInActive:
	default:
		return SeedEmployee{}, fmt.Errorf("invalid status %q: %w", r.Status, apperrors.ErrInvalidStatus)
	}

	salary := decimal.Zero
	if r.GrossSalary != "" {
		parsed, err := decimal.NewFromString(r.GrossSalary)
		if err != nil {
			return SeedEmployee{}, fmt.Errorf("invalid grossSalary %q: %w", r.GrossSalary, err)
		}
		salary = parsed
	}

	var joined *time.Time
	if r.JoiningDate != "" {
		parsed, err := time.Parse(time.DateOnly, r.JoiningDate)
		if err != nil {
			return SeedEmployee{}, fmt.Errorf("invalid joiningDate %q: %w", r.JoiningDate, err)
		}
		joined = &parsed
	}

	return SeedEmployee{
		Employee: model.Employee{
			EmpID:       empID,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			Designation: r.Designation,
			Department:  r.Department,
			Status:      r.Status,
			InAppRole:   r.InAppRole,
			Company:     r.Company,
			Branch:      r.Branch,
			PhotoURL:    r.PhotoURL,
			JoiningDate: joined,
			GrossSalary: salary,
		},
		Password: r.Password,
	}, nil
}
