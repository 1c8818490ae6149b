package department

import "context"

type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	GetByName(ctx context.Context, name string) (Department, error)
	Create(ctx context.Context, newDepartment Department) (Department, error)
	Update(ctx context.Context, id int64, patch Patch) (Department, error)
	Delete(ctx context.Context, id int64) error
}
