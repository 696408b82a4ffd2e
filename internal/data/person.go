package data

import (
	"fmt"

	"github.com/ansel1/merry"
	"github.com/jmoiron/sqlx"
)

type Person struct {
	Role            Role   `db:"-" yaml:"role"`
	ID              int64  `db:"id" yaml:"id"`
	Name            string `db:"name" yaml:"name"`
	TelephoneNumber string `db:"telephone_number" yaml:"telephone_number"`
	EmailAddress    string `db:"email_address" yaml:"email_address"`
	PhysicalAddress string `db:"physical_address" yaml:"physical_address"`
}

type NewPerson struct {
	Name            string
	TelephoneNumber string
	EmailAddress    string
	PhysicalAddress string
}

func selectPersons(r Role) string {
	return fmt.Sprintf(`SELECT %s AS id, name, telephone_number, email_address, physical_address FROM %s`,
		r.IDColumn(), r.Table())
}

// GetPerson reads the person of the given role by key. Anything but exactly
// one matching row gives nil.
func (db *DB) GetPerson(r Role, id int64) (*Person, error) {
	var xs []Person
	err := db.db.Select(&xs, db.db.Rebind(selectPersons(r)+" WHERE "+r.IDColumn()+" = ?"), id)
	if err != nil {
		return nil, merry.Appendf(err, "get %s %d", r, id)
	}
	if len(xs) != 1 {
		return nil, nil
	}
	xs[0].Role = r
	return &xs[0], nil
}

func (db *DB) GetArchitect(id int64) (*Person, error) {
	return db.GetPerson(Architect, id)
}

func (db *DB) GetContractor(id int64) (*Person, error) {
	return db.GetPerson(Contractor, id)
}

func (db *DB) GetCustomer(id int64) (*Person, error) {
	return db.GetPerson(Customer, id)
}

func (db *DB) GetEngineer(id int64) (*Person, error) {
	return db.GetPerson(Engineer, id)
}

func (db *DB) GetManager(id int64) (*Person, error) {
	return db.GetPerson(Manager, id)
}

// ListPersons returns every person of the role, except those whose keys are
// in excludeIDs.
func (db *DB) ListPersons(r Role, excludeIDs []int64) ([]Person, error) {
	query := selectPersons(r)
	var args []interface{}
	if len(excludeIDs) > 0 {
		var err error
		query, args, err = sqlx.In(query+" WHERE "+r.IDColumn()+" NOT IN (?)", excludeIDs)
		if err != nil {
			return nil, merry.Wrap(err)
		}
	}
	return db.selectPersons(r, query+" ORDER BY "+r.IDColumn(), args...)
}

// FindPersonsByName returns the people of the role whose name contains
// fragment, ignoring case.
func (db *DB) FindPersonsByName(r Role, fragment string) ([]Person, error) {
	query := selectPersons(r) + " WHERE LOWER(name) LIKE ? ESCAPE '" + likeEscape + "' ORDER BY " + r.IDColumn()
	return db.selectPersons(r, query, likePattern(fragment))
}

func (db *DB) selectPersons(r Role, query string, args ...interface{}) ([]Person, error) {
	xs := []Person{}
	if err := db.db.Select(&xs, db.db.Rebind(query), bindArgs(args)...); err != nil {
		return nil, merry.Appendf(err, "list %ss", r)
	}
	for i := range xs {
		xs[i].Role = r
	}
	return xs, nil
}

// CreatePerson inserts a person of the given role and reads it back by the
// generated key. The role tag is matched case-insensitively; an unknown tag
// is an error. A row that was not inserted or cannot be read back gives nil.
func (db *DB) CreatePerson(role string, p NewPerson) (*Person, error) {
	r, err := ParseRole(role)
	if err != nil {
		return nil, err
	}
	id, err := db.insertReturningID(
		"INSERT INTO "+r.Table()+" (name, telephone_number, email_address, physical_address) VALUES (?, ?, ?, ?)",
		r.IDColumn(),
		p.Name, p.TelephoneNumber, p.EmailAddress, p.PhysicalAddress)
	if merry.Is(err, ErrNotInserted) {
		log.PrintErr(err, "role", r)
		return nil, nil
	}
	if err != nil {
		return nil, merry.Appendf(err, "create %s", r)
	}
	return db.GetPerson(r, id)
}

// DeletePerson removes the person without checking that it exists. Projects
// that refer to the person keep the dangling key.
func (db *DB) DeletePerson(r Role, id int64) error {
	_, err := db.ExecAffected("DELETE FROM "+r.Table()+" WHERE "+r.IDColumn()+" = ?", id)
	return err
}

func PersonIDs(xs []Person) []int64 {
	ids := make([]int64, 0, len(xs))
	for _, p := range xs {
		ids = append(ids, p.ID)
	}
	return ids
}
