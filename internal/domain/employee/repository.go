package employee

import "context"

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByDepartment(ctx context.Context, department string) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id int64, patch Patch) (Employee, error)
	Delete(ctx context.Context, id int64) error
}
