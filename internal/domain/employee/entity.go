package employee

import (
	"time"
)

type Employee struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Role       string
	Department string // department name, not a foreign key
	JoinDate   time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusArchived
}

// IsActive reports whether the employee counts toward rosters and attendance.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Name       *string
	Email      *string
	Phone      *string
	Role       *string
	Department *string
	JoinDate   *time.Time
	Status     *Status
}

// ApplyTo copies the set fields of p onto e.
func (p Patch) ApplyTo(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.JoinDate != nil {
		e.JoinDate = *p.JoinDate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
}

// Active returns the active employees in their original order.
func Active(employees []Employee) []Employee {
	active := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	return active
}
