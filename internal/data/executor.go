package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"
)

// Row is one result row: the column names in select order and the value of
// each column, typed after the column's declared SQL type.
type Row struct {
	Columns []string
	Values  map[string]interface{}
}

func (r Row) Value(column string) interface{} {
	return r.Values[column]
}

// QueryRows runs a parameterized query and returns every row.
func (db *DB) QueryRows(query string, args ...interface{}) ([]Row, error) {
	rows, err := db.db.Queryx(db.db.Rebind(query), bindArgs(args)...)
	if err != nil {
		return nil, merry.Append(err, query)
	}
	defer log.ErrIfFail(rows.Close)

	columns, err := rows.Columns()
	if err != nil {
		return nil, merry.Wrap(err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, merry.Wrap(err)
	}

	result := []Row{}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, merry.Append(err, query)
		}
		row := Row{Columns: columns, Values: make(map[string]interface{}, len(columns))}
		for i, c := range columns {
			row.Values[c] = typedValue(types[i].DatabaseTypeName(), values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, merry.Append(err, query)
	}
	return result, nil
}

// ExecAffected runs a parameterized statement and returns the number of
// affected rows.
func (db *DB) ExecAffected(query string, args ...interface{}) (int64, error) {
	r, err := db.db.Exec(db.db.Rebind(query), bindArgs(args)...)
	if err != nil {
		return 0, merry.Append(err, query)
	}
	n, err := r.RowsAffected()
	if err != nil {
		return 0, merry.Wrap(err)
	}
	return n, nil
}

// Query is QueryRows for callers that treat a failed statement as an empty
// result. The fault is logged.
func (db *DB) Query(query string, args ...interface{}) []Row {
	rows, err := db.QueryRows(query, args...)
	if err != nil {
		log.PrintErr(err)
		return []Row{}
	}
	return rows
}

// Update is ExecAffected for callers that only need to know whether the
// statement went through: a failed statement is logged and reported as -1.
func (db *DB) Update(query string, args ...interface{}) int64 {
	n, err := db.ExecAffected(query, args...)
	if err != nil {
		log.PrintErr(err)
		return -1
	}
	return n
}

func bindArgs(args []interface{}) []interface{} {
	xs := make([]interface{}, len(args))
	for i, a := range args {
		xs[i] = bindArg(a)
	}
	return xs
}

func bindArg(a interface{}) interface{} {
	switch v := a.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64, string, float64, bool, nil:
		return v
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		return v.String()
	case time.Time:
		return v.UTC()
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UTC()
	case Role:
		return string(v)
	}
	return a
}

func typedValue(dbType string, v interface{}) interface{} {
	if v == nil {
		return nil
	}
	base := strings.ToUpper(strings.TrimSpace(dbType))
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	switch base {
	case "INTEGER", "INT", "BIGINT", "SMALLINT", "MEDIUMINT", "INT2", "INT4", "INT8", "SERIAL":
		if n, ok := toInt64(v); ok {
			return n
		}
	case "TEXT", "VARCHAR", "CHAR", "BPCHAR", "NVARCHAR", "NCHAR":
		return toString(v)
	case "DECIMAL", "NUMERIC":
		if d, err := toDecimal(v); err == nil {
			return d
		}
	case "REAL", "DOUBLE", "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE PRECISION":
		if f, err := strconv.ParseFloat(toString(v), 64); err == nil {
			return f
		}
	case "BOOLEAN", "BOOL":
		switch b := v.(type) {
		case bool:
			return b
		case int64:
			return b != 0
		}
		if b, err := strconv.ParseBool(toString(v)); err == nil {
			return b
		}
	case "DATE", "DATETIME", "TIMESTAMP", "TIMESTAMPTZ":
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	}
	n, err := strconv.ParseInt(toString(v), 10, 64)
	return n, err == nil
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(s, 10)
	case time.Time:
		return s.Format("2006-01-02")
	}
	return fmt.Sprint(v)
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	}
	return decimal.NewFromString(toString(v))
}
