package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrflow/internal/cache"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/navigation"
	"hrflow/internal/profile"
	"hrflow/internal/repository"
)

const (
	employeeCacheTTL = 5 * time.Minute
	bcryptCost       = 10
)

// EmployeeService exposes employee operations.
type EmployeeService interface {
	GetEmployee(ctx context.Context, empID string) (*model.Employee, error)
	ListEmployees(ctx context.Context, company string) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, employee *model.Employee, password string) (*model.Employee, error)
	SetStatus(ctx context.Context, empID, status string) error
	SeedEmployees(ctx context.Context, employees []SeedEmployee) (created int, updated int, err error)
}

// SeedEmployee is one employee row from a seed file.
type SeedEmployee struct {
	Employee model.Employee
	Password string
}

type employeeService struct {
	repo  repository.EmployeeRepository
	cache cache.Cache
}

// NewEmployeeService builds an EmployeeService with repository and cache.
func NewEmployeeService(repo repository.EmployeeRepository, cache cache.Cache) EmployeeService {
	return &employeeService{repo: repo, cache: cache}
}

func (s *employeeService) cacheKey(empID string) string {
	return fmt.Sprintf("employee:%s", empID)
}

// GetEmployee reads through the cache.
func (s *employeeService) GetEmployee(ctx context.Context, empID string) (*model.Employee, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(empID)); data != nil {
		var cached model.Employee
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	employee, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee %s: %w", empID, err)
	}

	if payload, err := json.Marshal(employee); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(empID), payload, employeeCacheTTL)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, company string) ([]model.Employee, error) {
	return s.repo.List(ctx, company)
}

// CreateEmployee hashes the password and inserts the row.
func (s *employeeService) CreateEmployee(ctx context.Context, employee *model.Employee, password string) (*model.Employee, error) {
	if err := normalizeStatus(employee); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, employee.EmpID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmployeeExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check employee existence: %w", err)
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		employee.PasswordHash = string(hashed)
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(employee.EmpID))
	return employee, nil
}

// SetStatus switches an employee between Active and InActive.
func (s *employeeService) SetStatus(ctx context.Context, empID, status string) error {
	if status != model.EmployeeActive && status != model.EmployeeInActive {
		return apperrors.ErrInvalidStatus
	}
	if err := s.repo.SetStatus(ctx, empID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("set status for %s: %w", empID, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(empID))
	return nil
}

// SeedEmployees creates missing employees and updates existing ones. Every
// row is validated before the first write.
func (s *employeeService) SeedEmployees(ctx context.Context, employees []SeedEmployee) (created int, updated int, err error) {
	normalized := make([]model.Employee, len(employees))
	for i, item := range employees {
		normalized[i] = item.Employee
		if err := normalizeStatus(&normalized[i]); err != nil {
			return 0, 0, fmt.Errorf("seed employee %s: %w", item.Employee.EmpID, err)
		}
	}

	for i, item := range employees {
		employee := normalized[i]

		if item.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcryptCost)
			if err != nil {
				return created, updated, fmt.Errorf("hash password for %s: %w", employee.EmpID, err)
			}
			employee.PasswordHash = string(hashed)
		}

		existing, err := s.repo.FindByID(ctx, employee.EmpID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("seed employee %s: %w", employee.EmpID, err)
		}

		if existing != nil {
			existing.Name = employee.Name
			existing.Email = employee.Email
			existing.Phone = employee.Phone
			existing.Designation = employee.Designation
			existing.Department = employee.Department
			existing.Status = employee.Status
			existing.InAppRole = employee.InAppRole
			existing.Company = employee.Company
			existing.Branch = employee.Branch
			existing.PhotoURL = employee.PhotoURL
			existing.JoiningDate = employee.JoiningDate
			existing.GrossSalary = employee.GrossSalary
			if employee.PasswordHash != "" {
				existing.PasswordHash = employee.PasswordHash
			}
			if err := s.repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("update employee %s: %w", employee.EmpID, err)
			}
			updated++
		} else {
			if err := s.repo.Create(ctx, &employee); err != nil {
				return created, updated, fmt.Errorf("create employee %s: %w", employee.EmpID, err)
			}
			created++
		}

		_ = s.cache.Delete(ctx, s.cacheKey(employee.EmpID))
	}
	return created, updated, nil
}

func normalizeStatus(employee *model.Employee) error {
	switch employee.Status {
	case "":
		employee.Status = model.EmployeeActive
	case model.EmployeeActive, model.EmployeeInActive:
	default:
		return apperrors.ErrInvalidStatus
	}
	if employee.InAppRole == "" {
		employee.InAppRole = navigation.RoleEmployee
	}
	return nil
}

// NewLocalFetcher adapts the employee service to profile.Fetcher so the
// routing flow can run without an HTTP hop.
func NewLocalFetcher(svc EmployeeService) profile.Fetcher {
	return profile.FetcherFunc(func(ctx context.Context, id string) (navigation.UserRecord, error) {
		employee, err := svc.GetEmployee(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmployeeNotFound) {
				return navigation.UserRecord{}, &profile.FetchError{Kind: profile.KindNotFound, ID: id, Err: err}
			}
			return navigation.UserRecord{}, &profile.FetchError{Kind: profile.KindServerError, ID: id, Err: err}
		}
		return ToUserRecord(employee), nil
	})
}

// ToUserRecord projects an employee onto the fields used for routing.
func ToUserRecord(employee *model.Employee) navigation.UserRecord {
	return navigation.UserRecord{
		ID:      employee.EmpID,
		Status:  navigation.Status(employee.Status),
		Role:    employee.InAppRole,
		Company: employee.Company,
	}
}
