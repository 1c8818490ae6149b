package department

import "time"

type Department struct {
	ID   int64
	Name string
	Head string
	// EmployeeCount is derived from the employee directory on every read.
	EmployeeCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Patch struct {
	Name *string
	Head *string
}

func (p Patch) ApplyTo(d *Department) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Head != nil {
		d.Head = *p.Head
	}
}
