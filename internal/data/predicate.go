package data

import (
	"strings"

	"github.com/ansel1/merry"
)

// Predicate is a condition on the projects table rendered to a
// parameterized WHERE clause. Groups of conditions are always parenthesized,
// so mixing AND and OR needs explicit nesting.
type Predicate interface {
	render(b *strings.Builder, args *[]interface{}) error
}

type Chain string

const (
	ChainAnd Chain = "AND"
	ChainOr  Chain = "OR"
)

var projectColumns = map[string]bool{
	"project_number":      true,
	"project_name":        true,
	"building_type":       true,
	"physical_address":    true,
	"erf_number":          true,
	"total_fee":           true,
	"amount_paid_to_date": true,
	"start_date":          true,
	"deadline":            true,
	"finalised":           true,
	"completion_date":     true,
	"engineer_id":         true,
	"manager_id":          true,
	"architect_id":        true,
	"contractor_id":       true,
	"customer_id":         true,
}

type cond struct {
	field string
	op    string
	value interface{}
	unary bool
}

func (c cond) render(b *strings.Builder, args *[]interface{}) error {
	if !projectColumns[c.field] {
		return merry.Errorf("unknown project column %q", c.field)
	}
	b.WriteString(c.field)
	b.WriteString(" ")
	b.WriteString(c.op)
	if !c.unary {
		b.WriteString(" ?")
		*args = append(*args, c.value)
	}
	return nil
}

func Eq(field string, value interface{}) Predicate {
	return cond{field: field, op: "=", value: value}
}

func Before(field string, value interface{}) Predicate {
	return cond{field: field, op: "<", value: value}
}

func IsNull(field string) Predicate {
	return cond{field: field, op: "IS NULL", unary: true}
}

// Like matches field case-insensitively against a substring.
func Like(field, fragment string) Predicate {
	return lowerLike{field: field, fragment: fragment}
}

type lowerLike struct {
	field, fragment string
}

func (c lowerLike) render(b *strings.Builder, args *[]interface{}) error {
	if !projectColumns[c.field] {
		return merry.Errorf("unknown project column %q", c.field)
	}
	b.WriteString("LOWER(" + c.field + ") LIKE ? ESCAPE '" + likeEscape + "'")
	*args = append(*args, likePattern(c.fragment))
	return nil
}

// '!' instead of a backslash: MySQL reads '\' as an unterminated literal.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// likePattern matches fragment literally, anywhere, ignoring case.
func likePattern(fragment string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(fragment)) + "%"
}

// Unassigned matches projects whose reference to the role is empty or points
// at a person that no longer exists.
func Unassigned(r Role) Predicate {
	return unassigned{role: r}
}

type unassigned struct {
	role Role
}

func (c unassigned) render(b *strings.Builder, _ *[]interface{}) error {
	if _, ok := roles[c.role]; !ok {
		return merry.Appendf(ErrInvalidRole, "%q", string(c.role))
	}
	col := c.role.ProjectColumn()
	if !projectColumns[col] {
		return merry.Errorf("unknown project column %q", col)
	}
	b.WriteString("(" + col + " IS NULL OR " + col + " NOT IN (SELECT " +
		c.role.IDColumn() + " FROM " + c.role.Table() + "))")
	return nil
}

type group struct {
	chain Chain
	preds []Predicate
}

func (g group) render(b *strings.Builder, args *[]interface{}) error {
	if g.chain != ChainAnd && g.chain != ChainOr {
		return merry.Errorf("invalid chain operator %q", string(g.chain))
	}
	if len(g.preds) == 0 {
		return merry.New("empty condition group")
	}
	b.WriteString("(")
	for i, p := range g.preds {
		if i > 0 {
			b.WriteString(" " + string(g.chain) + " ")
		}
		if err := p.render(b, args); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

func And(preds ...Predicate) Predicate {
	return group{chain: ChainAnd, preds: preds}
}

func Or(preds ...Predicate) Predicate {
	return group{chain: ChainOr, preds: preds}
}

// Where renders the predicate to a clause, including the WHERE keyword, and
// the arguments for its placeholders. A nil predicate renders to nothing.
func Where(p Predicate) (string, []interface{}, error) {
	if p == nil {
		return "", nil, nil
	}
	var b strings.Builder
	var args []interface{}
	if err := p.render(&b, &args); err != nil {
		return "", nil, err
	}
	return " WHERE " + b.String(), args, nil
}
