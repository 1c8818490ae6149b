package postgresql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// assignments collects SET clauses for a partial update in insertion order.
type assignments struct {
	columns []string
	args    []interface{}
}

func (a *assignments) set(column string, value interface{}) {
	a.columns = append(a.columns, column)
	a.args = append(a.args, value)
}

func (a *assignments) empty() bool {
	return len(a.columns) == 0
}

// update renders "UPDATE table SET ... WHERE id = $n RETURNING returning".
func (a *assignments) update(table string, id int64, returning string) (string, []interface{}) {
	clauses := make([]string, 0, len(a.columns)+1)
	for i, col := range a.columns {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, i+1))
	}
	clauses = append(clauses, "updated_at = NOW()")

	args := append(append([]interface{}{}, a.args...), id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(clauses, ", "), len(args), returning)
	return sql, args
}

// wrap classifies err and prefixes it with what was being done.
func wrap(action string, err error) error {
	return fmt.Errorf("failed to %s: %w", action, database.Classify(err))
}
