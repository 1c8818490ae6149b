package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/filter"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func empName(e employee.Employee) string            { return e.Name }
func empEmail(e employee.Employee) string           { return e.Email }
func empRole(e employee.Employee) string            { return e.Role }
func empDepartment(e employee.Employee) string      { return e.Department }
func empStatus(e employee.Employee) employee.Status { return e.Status }

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, f employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := f.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	all, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	matched := filter.Apply(all,
		filter.Contains(f.Search, empName, empEmail, empRole),
		filter.Equals(f.Department, empDepartment),
		filter.Equals(employee.Status(f.Status), empStatus),
	)

	result := employee.ListEmployeeResponse{
		Employees:     make([]employee.EmployeeResponse, 0, len(matched)),
		Total:         len(matched),
		ActiveCount:   filter.Count(all, employee.Employee.IsActive),
		ArchivedCount: filter.Count(all, func(e employee.Employee) bool { return !e.IsActive() }),
	}
	for _, e := range matched {
		result.Employees = append(result.Employees, employee.NewEmployeeResponse(e))
	}
	return result, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := req.ToEntity()
	if err := s.ensureDepartment(ctx, newEmployee.Department); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "department", created.Department)
	return employee.NewEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	patch := req.ToPatch()
	if patch.Department != nil {
		if err := s.ensureDepartment(ctx, *patch.Department); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	updated, err := s.employeeRepo.Update(ctx, req.ID, patch)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.NewEmployeeResponse(updated), nil
}

// ArchiveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ArchiveEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive() {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyArchived
	}

	archived := employee.StatusArchived
	updated, err := s.employeeRepo.Update(ctx, id, employee.Patch{Status: &archived})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to archive employee: %w", err)
	}

	slog.Info("Employee archived", "employee_id", id)
	return employee.NewEmployeeResponse(updated), nil
}

// ensureDepartment reports a field error when name is not a known department.
func (s *EmployeeServiceImpl) ensureDepartment(ctx context.Context, name string) error {
	_, err := s.departmentRepo.GetByName(ctx, name)
	if errors.Is(err, department.ErrDepartmentNotFound) {
		var errs validator.ValidationErrors
		errs.Add("department", fmt.Sprintf("department %q does not exist", name))
		return errs
	}
	if err != nil {
		return fmt.Errorf("failed to check department: %w", err)
	}
	return nil
}
