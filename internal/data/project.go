package data

import (
	"database/sql"
	"strings"
	"time"

	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"
)

type Project struct {
	ProjectNumber    int64           `yaml:"project_number"`
	ProjectName      string          `yaml:"project_name"`
	BuildingType     string          `yaml:"building_type"`
	PhysicalAddress  string          `yaml:"physical_address"`
	ERFNumber        string          `yaml:"erf_number"`
	TotalFee         decimal.Decimal `yaml:"total_fee"`
	AmountPaidToDate decimal.Decimal `yaml:"amount_paid_to_date"`
	StartDate        time.Time       `yaml:"start_date"`
	Deadline         time.Time       `yaml:"deadline"`
	Finalised        bool            `yaml:"finalised"`
	CompletionDate   *time.Time      `yaml:"completion_date"`
	Engineer         *Person         `yaml:"engineer"`
	Manager          *Person         `yaml:"manager"`
	Architect        *Person         `yaml:"architect"`
	Contractor       *Person         `yaml:"contractor"`
	Customer         *Person         `yaml:"customer"`
}

// Person returns the person the project refers to in the given role, nil
// when unassigned.
func (p Project) Person(r Role) *Person {
	switch r {
	case Engineer:
		return p.Engineer
	case Manager:
		return p.Manager
	case Architect:
		return p.Architect
	case Contractor:
		return p.Contractor
	case Customer:
		return p.Customer
	}
	return nil
}

type projectRow struct {
	ProjectNumber    int64           `db:"project_number"`
	ProjectName      string          `db:"project_name"`
	BuildingType     string          `db:"building_type"`
	PhysicalAddress  string          `db:"physical_address"`
	ERFNumber        string          `db:"erf_number"`
	TotalFee         decimal.Decimal `db:"total_fee"`
	AmountPaidToDate decimal.Decimal `db:"amount_paid_to_date"`
	StartDate        time.Time       `db:"start_date"`
	Deadline         time.Time       `db:"deadline"`
	Finalised        bool            `db:"finalised"`
	CompletionDate   sql.NullTime    `db:"completion_date"`
	EngineerID       sql.NullInt64   `db:"engineer_id"`
	ManagerID        sql.NullInt64   `db:"manager_id"`
	ArchitectID      sql.NullInt64   `db:"architect_id"`
	ContractorID     sql.NullInt64   `db:"contractor_id"`
	CustomerID       sql.NullInt64   `db:"customer_id"`
}

type NewProject struct {
	Name            string
	BuildingType    string
	PhysicalAddress string
	ERFNumber       string
	TotalFee        decimal.Decimal
	Deadline        time.Time
	CustomerID      int64
}

// ReadProjects returns the projects matching where, in project number
// order, with every referenced person read from its table.
func (db *DB) ReadProjects(where Predicate) ([]Project, error) {
	clause, args, err := Where(where)
	if err != nil {
		return nil, err
	}
	var rows []projectRow
	query := "SELECT * FROM projects" + clause + " ORDER BY project_number"
	if err := db.db.Select(&rows, db.db.Rebind(query), bindArgs(args)...); err != nil {
		return nil, merry.Append(err, query)
	}
	projects := make([]Project, 0, len(rows))
	for _, r := range rows {
		p, err := db.hydrate(r)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// ReadProjectsChained joins conds with a single chain operator.
func (db *DB) ReadProjectsChained(chain Chain, conds ...Predicate) ([]Project, error) {
	return db.ReadProjects(group{chain: chain, preds: conds})
}

func (db *DB) GetProject(number int64) (*Project, error) {
	xs, err := db.ReadProjects(Eq("project_number", number))
	if err != nil {
		return nil, err
	}
	if len(xs) != 1 {
		return nil, nil
	}
	return &xs[0], nil
}

func (db *DB) FindProjectsByName(fragment string) ([]Project, error) {
	return db.ReadProjects(Like("project_name", fragment))
}

func (db *DB) IncompleteProjects() ([]Project, error) {
	return db.ReadProjects(Eq("finalised", false))
}

func (db *DB) ProjectsPastDeadline(today time.Time) ([]Project, error) {
	return db.ReadProjectsChained(ChainAnd,
		Before("deadline", DateOnly(today)),
		Eq("finalised", false))
}

// ProjectsWithUnassignedPeople returns projects missing at least one of the
// five personnel assignments. A reference to a deleted person counts as
// missing.
func (db *DB) ProjectsWithUnassignedPeople() ([]Project, error) {
	var conds []Predicate
	for _, r := range []Role{Engineer, Manager, Architect, Contractor, Customer} {
		conds = append(conds, Unassigned(r))
	}
	return db.ReadProjectsChained(ChainOr, conds...)
}

// CountCustomerProjects counts the projects registered to a customer. A
// failed query counts as zero.
func (db *DB) CountCustomerProjects(customerID int64) int64 {
	rows := db.Query("SELECT COUNT(*) AS n FROM projects WHERE customer_id = ?", customerID)
	if len(rows) != 1 {
		return 0
	}
	n, _ := toInt64(rows[0].Value("n"))
	return n
}

func (db *DB) hydrate(r projectRow) (Project, error) {
	p := Project{
		ProjectNumber:    r.ProjectNumber,
		ProjectName:      r.ProjectName,
		BuildingType:     r.BuildingType,
		PhysicalAddress:  r.PhysicalAddress,
		ERFNumber:        r.ERFNumber,
		TotalFee:         r.TotalFee,
		AmountPaidToDate: r.AmountPaidToDate,
		StartDate:        r.StartDate,
		Deadline:         r.Deadline,
		Finalised:        r.Finalised,
	}
	if r.CompletionDate.Valid {
		t := r.CompletionDate.Time
		p.CompletionDate = &t
	}
	refs := []struct {
		role Role
		id   sql.NullInt64
		dest **Person
	}{
		{Engineer, r.EngineerID, &p.Engineer},
		{Manager, r.ManagerID, &p.Manager},
		{Architect, r.ArchitectID, &p.Architect},
		{Contractor, r.ContractorID, &p.Contractor},
		{Customer, r.CustomerID, &p.Customer},
	}
	for _, ref := range refs {
		if !ref.id.Valid {
			continue
		}
		x, err := db.GetPerson(ref.role, ref.id.Int64)
		if err != nil {
			return Project{}, err
		}
		*ref.dest = x
	}
	return p, nil
}

// DefaultProjectName names a project after its customer: the second word of
// the customer's name, or the only word when there is one.
func DefaultProjectName(customerName string) string {
	xs := strings.Fields(customerName)
	switch len(xs) {
	case 0:
		return ""
	case 1:
		return xs[0]
	}
	return xs[1]
}

// CreateProject inserts a project and reads it back by the generated key. An
// empty name is replaced by the customer's default project name.
func (db *DB) CreateProject(x NewProject) (*Project, error) {
	if x.Name == "" {
		c, err := db.GetCustomer(x.CustomerID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			x.Name = DefaultProjectName(c.Name)
		}
	}
	id, err := db.insertReturningID(`
INSERT INTO projects (project_name, building_type, physical_address, erf_number, total_fee, deadline, customer_id)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"project_number",
		x.Name, x.BuildingType, x.PhysicalAddress, x.ERFNumber, x.TotalFee, DateOnly(x.Deadline), x.CustomerID)
	if merry.Is(err, ErrNotInserted) {
		log.PrintErr(err, "project", x.Name)
		return nil, nil
	}
	if err != nil {
		return nil, merry.Append(err, "create project")
	}
	return db.GetProject(id)
}

// DeleteProject removes the project without checking that it exists.
func (db *DB) DeleteProject(number int64) error {
	_, err := db.ExecAffected("DELETE FROM projects WHERE project_number = ?", number)
	return err
}
