package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// EmployeeCount is not a column; the department service derives it.
const departmentColumns = `id, name, head, created_at, updated_at`

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(&d.ID, &d.Name, &d.Head, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *departmentRepositoryImpl) one(ctx context.Context, query string, arg interface{}) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDepartment(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, wrap("get department", err)
	}
	return d, nil
}

// GetAll implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetAll(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY id`)
	if err != nil {
		return nil, wrap("query departments", err)
	}
	defer rows.Close()

	departments := make([]department.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, wrap("scan department", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate departments", err)
	}
	return departments, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	return r.one(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id)
}

// GetByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	return r.one(ctx, `SELECT `+departmentColumns+` FROM departments WHERE name = $1`, name)
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	created, err := scanDepartment(q.QueryRow(ctx,
		`INSERT INTO departments (name, head) VALUES ($1, $2) RETURNING `+departmentColumns,
		newDepartment.Name, newDepartment.Head,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, wrap("create department", err)
	}
	return created, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id int64, patch department.Patch) (department.Department, error) {
	var a assignments
	if patch.Name != nil {
		a.set("name", *patch.Name)
	}
	if patch.Head != nil {
		a.set("head", *patch.Head)
	}
	if a.empty() {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)
	sql, args := a.update("departments", id, departmentColumns)
	updated, err := scanDepartment(q.QueryRow(ctx, sql, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return department.Department{}, department.ErrDepartmentNotFound
		case isUniqueViolation(err):
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, wrap("update department", err)
	}
	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return wrap("delete department", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
