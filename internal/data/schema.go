package data

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ansel1/merry"
	migrate "github.com/rubenv/sql-migrate"
)

type dialectDDL struct {
	migrateDialect string
	id             string
	text           string
	money          string
	date           string
	startDate      string
	boolean        string
	ref            string
}

var dialects = map[string]dialectDDL{
	DriverSqlite: {
		migrateDialect: "sqlite3",
		id:             "INTEGER PRIMARY KEY AUTOINCREMENT",
		text:           "TEXT",
		money:          "DECIMAL(12, 2)",
		date:           "DATE",
		startDate:      "DATE NOT NULL DEFAULT CURRENT_DATE",
		boolean:        "BOOLEAN NOT NULL DEFAULT 0",
		ref:            "INTEGER",
	},
	DriverMysql: {
		migrateDialect: "mysql",
		id:             "INT AUTO_INCREMENT PRIMARY KEY",
		text:           "VARCHAR(255)",
		money:          "DECIMAL(12, 2)",
		date:           "DATE",
		startDate:      "DATE NOT NULL DEFAULT (CURRENT_DATE)",
		boolean:        "BOOLEAN NOT NULL DEFAULT FALSE",
		ref:            "INT",
	},
	DriverPostgres: {
		migrateDialect: "postgres",
		id:             "SERIAL PRIMARY KEY",
		text:           "TEXT",
		money:          "NUMERIC(12, 2)",
		date:           "DATE",
		startDate:      "DATE NOT NULL DEFAULT CURRENT_DATE",
		boolean:        "BOOLEAN NOT NULL DEFAULT FALSE",
		ref:            "INTEGER",
	},
}

func init() {
	migrate.SetTable("migrations")
}

// Migrate brings the schema of the connected database up to date.
func Migrate(conn *sql.DB, driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return merry.Errorf("no schema for database driver %q", driver)
	}
	n, err := migrate.Exec(conn, d.migrateDialect, migrations(d), migrate.Up)
	if err != nil {
		return merry.Append(err, "migrate database")
	}
	log.Debug("migrations applied", "count", n)
	return nil
}

func migrations(d dialectDDL) *migrate.MemoryMigrationSource {
	people := &migrate.Migration{Id: "0001_people"}
	for _, r := range Roles() {
		people.Up = append(people.Up, fmt.Sprintf(`
CREATE TABLE %s
(
    %s %s,
    name             %s NOT NULL,
    telephone_number %s NOT NULL,
    email_address    %s NOT NULL,
    physical_address %s NOT NULL
)`, r.Table(), r.IDColumn(), d.id, d.text, d.text, d.text, d.text))
		people.Down = append(people.Down, "DROP TABLE "+r.Table())
	}

	var refs []string
	for _, r := range []Role{Engineer, Manager, Architect, Contractor} {
		refs = append(refs, fmt.Sprintf("    %s %s", r.ProjectColumn(), d.ref))
	}
	projects := &migrate.Migration{
		Id: "0002_projects",
		Up: []string{fmt.Sprintf(`
CREATE TABLE projects
(
    project_number      %s,
    project_name        %s NOT NULL,
    building_type       %s NOT NULL,
    physical_address    %s NOT NULL,
    erf_number          %s NOT NULL,
    total_fee           %s NOT NULL,
    amount_paid_to_date %s NOT NULL DEFAULT 0,
    start_date          %s,
    deadline            %s NOT NULL,
    finalised           %s,
    completion_date     %s,
%s,
    customer_id %s NOT NULL
)`, d.id, d.text, d.text, d.text, d.text, d.money, d.money, d.startDate, d.date, d.boolean, d.date,
			strings.Join(refs, ",\n"), d.ref)},
		Down: []string{"DROP TABLE projects"},
	}
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{people, projects},
	}
}
