package memory

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
)

type departmentRepositoryImpl struct {
	s *Store
}

func NewDepartmentRepository(s *Store) department.DepartmentRepository {
	return &departmentRepositoryImpl{s: s}
}

// read drops any persisted count; the service derives it from the directory.
func read(d department.Department) department.Department {
	d.EmployeeCount = 0
	return d
}

func (r *departmentRepositoryImpl) GetAll(ctx context.Context) ([]department.Department, error) {
	t := r.s.departments
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := t.sorted()
	for i := range rows {
		rows[i] = read(rows[i])
	}
	return rows, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	t := r.s.departments
	t.mu.RLock()
	defer t.mu.RUnlock()

	d, ok := t.rows[id]
	if !ok {
		return department.Department{}, fmt.Errorf("department with id %d: %w", id, department.ErrDepartmentNotFound)
	}
	return read(d), nil
}

func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	t := r.s.departments
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, d := range t.sorted() {
		if d.Name == name {
			return read(d), nil
		}
	}
	return department.Department{}, fmt.Errorf("department %q: %w", name, department.ErrDepartmentNotFound)
}

// nameTaken reports whether another department already uses name. Callers must hold mu.
func (r *departmentRepositoryImpl) nameTaken(name string, exceptID int64) bool {
	for id, d := range r.s.departments.rows {
		if id != exceptID && d.Name == name {
			return true
		}
	}
	return false
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	t := r.s.departments
	t.mu.Lock()
	defer t.mu.Unlock()

	if r.nameTaken(newDepartment.Name, 0) {
		return department.Department{}, fmt.Errorf("department %q: %w", newDepartment.Name, department.ErrDepartmentNameExists)
	}

	now := r.s.timestamp()
	newDepartment.ID = t.allocate()
	newDepartment.EmployeeCount = 0
	newDepartment.CreatedAt = now
	newDepartment.UpdatedAt = now
	t.rows[newDepartment.ID] = newDepartment
	return newDepartment, nil
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, id int64, patch department.Patch) (department.Department, error) {
	t := r.s.departments
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.rows[id]
	if !ok {
		return department.Department{}, fmt.Errorf("department with id %d: %w", id, department.ErrDepartmentNotFound)
	}
	if patch.Name != nil && r.nameTaken(*patch.Name, id) {
		return department.Department{}, fmt.Errorf("department %q: %w", *patch.Name, department.ErrDepartmentNameExists)
	}
	patch.ApplyTo(&d)
	d.UpdatedAt = r.s.timestamp()
	t.rows[id] = d
	return read(d), nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	t := r.s.departments
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("department with id %d: %w", id, department.ErrDepartmentNotFound)
	}
	delete(t.rows, id)
	return nil
}
