package repository

import (
	"context"

	"gorm.io/gorm"

	"hrflow/internal/model"
)

// EmployeeRepository defines employee persistence operations.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, empID string) (*model.Employee, error)
	List(ctx context.Context, company string) ([]model.Employee, error)
	SetStatus(ctx context.Context, empID, status string) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository builds a GORM-backed repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) FindByID(ctx context.Context, empID string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("emp_id = ?", empID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List returns employees ordered by id, optionally filtered by company.
func (r *employeeRepository) List(ctx context.Context, company string) ([]model.Employee, error) {
	var employees []model.Employee
	q := r.db.WithContext(ctx).Order("emp_id")
	if company != "" {
		q = q.Where("company = ?", company)
	}
	if err := q.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// SetStatus updates the status column only. Missing rows yield gorm.ErrRecordNotFound.
func (r *employeeRepository) SetStatus(ctx context.Context, empID, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("emp_id = ?", empID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
