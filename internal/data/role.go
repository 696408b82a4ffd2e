package data

import (
	"strings"

	"github.com/ansel1/merry"
)

var (
	ErrInvalidRole  = merry.New("invalid role")
	ErrInvalidField = merry.New("invalid project field")
	ErrNotInserted  = merry.New("was not inserted")
)

func IsInvalidRole(err error) bool {
	return merry.Is(err, ErrInvalidRole)
}

func IsInvalidField(err error) bool {
	return merry.Is(err, ErrInvalidField)
}

// Role is one of the five kinds of people a project refers to. Every role
// is stored in its own table of identical shape.
type Role string

const (
	Architect  Role = "architect"
	Contractor Role = "contractor"
	Customer   Role = "customer"
	Engineer   Role = "engineer"
	Manager    Role = "manager"
)

type roleInfo struct {
	table    string
	idColumn string
	title    string
}

var roles = map[Role]roleInfo{
	Architect:  {table: "architects", idColumn: "architect_id", title: "Architect"},
	Contractor: {table: "contractors", idColumn: "contractor_id", title: "Contractor"},
	Customer:   {table: "customers", idColumn: "customer_id", title: "Customer"},
	Engineer:   {table: "engineers", idColumn: "engineer_id", title: "Engineer"},
	Manager:    {table: "managers", idColumn: "manager_id", title: "Manager"},
}

// Roles lists every role in the order the people menu offers them.
func Roles() []Role {
	return []Role{Manager, Contractor, Engineer, Architect, Customer}
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roles[r]; !ok {
		return "", merry.Appendf(ErrInvalidRole, "%q", s)
	}
	return r, nil
}

func (r Role) info() roleInfo {
	x, ok := roles[r]
	if !ok {
		panic(merry.Appendf(ErrInvalidRole, "%q", string(r)))
	}
	return x
}

func (r Role) Table() string {
	return r.info().table
}

// IDColumn is the key column of the role's own table.
func (r Role) IDColumn() string {
	return r.info().idColumn
}

// ProjectColumn is the column of the projects table that refers to a person
// of this role. It carries the same name as the key column.
func (r Role) ProjectColumn() string {
	return r.info().idColumn
}

func (r Role) Title() string {
	return r.info().title
}
