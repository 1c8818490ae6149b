// Package memory is an in-process record store. Each Store is independent,
// so tests construct a fresh one per case.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/leave"
)

// table holds one entity collection. IDs come from a monotonic counter and
// are never reused, even after a delete.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

// allocate reserves the next id. Callers must hold mu for writing.
func (t *table[T]) allocate() int64 {
	id := t.nextID
	t.nextID++
	return id
}

// sorted returns the rows in id order. Callers must hold mu.
func (t *table[T]) sorted() []T {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// Store owns every collection of the in-memory backend.
type Store struct {
	employees   *table[employee.Employee]
	departments *table[department.Department]
	attendances *table[attendance.Attendance]
	leaves      *table[leave.LeaveRequest]

	now func() time.Time
}

type Option func(*Store)

// WithClock overrides the timestamp source used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		employees:   newTable[employee.Employee](),
		departments: newTable[department.Department](),
		attendances: newTable[attendance.Attendance](),
		leaves:      newTable[leave.LeaveRequest](),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
