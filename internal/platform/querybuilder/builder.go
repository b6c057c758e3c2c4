// Package querybuilder renders postgres statements with numbered
// placeholders. Expressions passed to Expr, SetExpr and Suffix use "?" for
// their own arguments and are renumbered in place.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// sqlWriter accumulates statement text and its positional arguments.
type sqlWriter struct {
	strings.Builder
	args []any
}

func (w *sqlWriter) arg(v any) {
	w.args = append(w.args, v)
	w.WriteString("$")
	w.WriteString(strconv.Itoa(len(w.args)))
}

// expr copies s, replacing each "?" with the next value from args. Extra
// question marks are left untouched.
func (w *sqlWriter) expr(s string, args []any) {
	for i := 0; i < len(s); i++ {
		if s[i] == '?' && len(args) > 0 {
			w.arg(args[0])
			args = args[1:]
			continue
		}
		w.WriteByte(s[i])
	}
}

func (w *sqlWriter) list(items []string) {
	w.WriteString(strings.Join(items, ", "))
}

func (w *sqlWriter) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			w.WriteString(" WHERE ")
		} else {
			w.WriteString(" AND ")
		}
		c.render(w)
	}
}

func (w *sqlWriter) suffix(s string) {
	if s != "" {
		w.WriteByte(' ')
		w.expr(s, nil)
	}
}

type Condition interface {
	render(w *sqlWriter)
}

type binary struct {
	column string
	op     string
	value  any
}

func (c binary) render(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(c.op)
	w.arg(c.value)
}

func Eq(column string, value any) Condition  { return binary{column, " = ", value} }
func Gte(column string, value any) Condition { return binary{column, " >= ", value} }
func Lte(column string, value any) Condition { return binary{column, " <= ", value} }

type inList struct {
	column string
	values []any
}

// In matches nothing when values is empty.
func In(column string, values []any) Condition {
	return inList{column: column, values: values}
}

func (c inList) render(w *sqlWriter) {
	if len(c.values) == 0 {
		w.WriteString("FALSE")
		return
	}
	w.WriteString(c.column)
	w.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.WriteString(", ")
		}
		w.arg(v)
	}
	w.WriteByte(')')
}

type isNull string

func IsNull(column string) Condition { return isNull(column) }

func (c isNull) render(w *sqlWriter) {
	w.WriteString(string(c))
	w.WriteString(" IS NULL")
}

type rawExpr struct {
	sql  string
	args []any
}

func Expr(sql string, args ...any) Condition {
	return rawExpr{sql: sql, args: args}
}

func (c rawExpr) render(w *sqlWriter) {
	w.expr(c.sql, c.args)
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var w sqlWriter
	w.WriteString("SELECT ")
	w.list(b.columns)
	w.WriteString(" FROM ")
	w.WriteString(b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		w.list(b.orderBy)
	}
	if b.limit > 0 {
		w.WriteString(" LIMIT ")
		w.WriteString(strconv.Itoa(b.limit))
	}
	return w.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row; call it once per row for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if err := checkInsert(b.table, b.columns); err != nil {
		return "", nil, err
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var w sqlWriter
	writeInsertHead(&w, b.table, b.columns)
	w.WriteString(" VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteByte('(')
		writeArgs(&w, row)
		w.WriteByte(')')
	}
	w.suffix(b.suffix)
	return w.String(), w.args, nil
}

// InsertSelectBuilder renders a guarded single-row insert:
//
//	INSERT INTO t (a, b) SELECT $1, $2 WHERE <conditions> <suffix>
//
// Zero rows are written when any condition is false, so callers read
// RowsAffected to learn whether the guard held.
type InsertSelectBuilder struct {
	table   string
	columns []string
	values  []any
	where   []Condition
	suffix  string
}

func InsertSelect(table string) *InsertSelectBuilder {
	return &InsertSelectBuilder{table: table}
}

func (b *InsertSelectBuilder) Columns(columns ...string) *InsertSelectBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertSelectBuilder) Values(values ...any) *InsertSelectBuilder {
	b.values = append([]any(nil), values...)
	return b
}

func (b *InsertSelectBuilder) Where(conditions ...Condition) *InsertSelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *InsertSelectBuilder) Suffix(sql string) *InsertSelectBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertSelectBuilder) ToSQL() (string, []any, error) {
	if err := checkInsert(b.table, b.columns); err != nil {
		return "", nil, err
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values, expected %d", len(b.values), len(b.columns))
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("insert guard conditions are required")
	}

	var w sqlWriter
	writeInsertHead(&w, b.table, b.columns)
	w.WriteString(" SELECT ")
	writeArgs(&w, b.values)
	w.where(b.where)
	w.suffix(b.suffix)
	return w.String(), w.args, nil
}

func checkInsert(table string, columns []string) error {
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("insert table is required")
	}
	if len(columns) == 0 {
		return fmt.Errorf("insert columns are required")
	}
	return nil
}

func writeInsertHead(w *sqlWriter, table string, columns []string) {
	w.WriteString("INSERT INTO ")
	w.WriteString(table)
	w.WriteString(" (")
	w.list(columns)
	w.WriteByte(')')
}

func writeArgs(w *sqlWriter, values []any) {
	for i, v := range values {
		if i > 0 {
			w.WriteString(", ")
		}
		w.arg(v)
	}
}

type assignment struct {
	column string
	// cond renders the right-hand side: a bound value or an expression.
	cond Condition
}

type boundValue struct{ value any }

func (v boundValue) render(w *sqlWriter) { w.arg(v.value) }

type UpdateBuilder struct {
	table  string
	sets   []assignment
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, cond: boundValue{value}})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, cond: rawExpr{sql: expr, args: args}})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var w sqlWriter
	w.WriteString("UPDATE ")
	w.WriteString(b.table)
	w.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(s.column)
		w.WriteString(" = ")
		s.cond.render(&w)
	}
	w.where(b.where)
	w.suffix(b.suffix)
	return w.String(), w.args, nil
}
