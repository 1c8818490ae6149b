package memory

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

type employeeRepositoryImpl struct {
	s *Store
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{s: s}
}

func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	t := r.s.employees
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sorted(), nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	t := r.s.employees
	t.mu.RLock()
	defer t.mu.RUnlock()

	emp, ok := t.rows[id]
	if !ok {
		return employee.Employee{}, fmt.Errorf("employee with id %d: %w", id, employee.ErrEmployeeNotFound)
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	t := r.s.employees
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []employee.Employee
	for _, emp := range t.sorted() {
		if emp.Department == department {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	t := r.s.employees
	t.mu.Lock()
	defer t.mu.Unlock()

	now := r.s.timestamp()
	newEmployee.ID = t.allocate()
	newEmployee.JoinDate = validator.DateOf(newEmployee.JoinDate)
	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	t.rows[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id int64, patch employee.Patch) (employee.Employee, error) {
	t := r.s.employees
	t.mu.Lock()
	defer t.mu.Unlock()

	emp, ok := t.rows[id]
	if !ok {
		return employee.Employee{}, fmt.Errorf("employee with id %d: %w", id, employee.ErrEmployeeNotFound)
	}
	patch.ApplyTo(&emp)
	emp.JoinDate = validator.DateOf(emp.JoinDate)
	emp.UpdatedAt = r.s.timestamp()
	t.rows[id] = emp
	return emp, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	t := r.s.employees
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("employee with id %d: %w", id, employee.ErrEmployeeNotFound)
	}
	delete(t.rows, id)
	return nil
}
