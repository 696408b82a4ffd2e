package app

import (
	"io"

	"github.com/ansel1/merry"
	"github.com/poise/poisepms/internal/data"
	"github.com/poise/poisepms/internal/table"
	"github.com/powerman/structlog"
)

var log = structlog.New()

type app struct {
	db  *data.DB
	con *console
	cfg Config
}

// Run drives the console menus until the user exits or the input ends.
func Run(db *data.DB, cfg Config, in io.Reader, out io.Writer) error {
	a := &app{
		db:  db,
		con: newConsole(in, out, cfg.Console.DividerWidth),
		cfg: cfg,
	}
	err := a.mainMenu()
	if merry.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *app) mainMenu() error {
	a.con.divider()
	for {
		choice, err := a.con.choice(`Welcome to the PoisePMS...
1. Capture new project
2. Manage existing projects
3. Manage people

0. Exit`)
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = a.captureProject()
		case "2":
			err = a.manageProjects()
		case "3":
			err = a.managePeople()
		case "0":
			a.con.println("Exiting program...")
			a.con.divider()
			return nil
		default:
			a.con.invalidChoice()
			continue
		}
		if err != nil {
			return err
		}
		a.con.divider()
	}
}

func (a *app) renderPersons(xs []data.Person, fields ...string) {
	err := table.Render(a.con.out, xs, table.Select(personColumns, fields...),
		a.cfg.Console.ColumnMaxWidth, "No people found.")
	if err != nil {
		log.PrintErr(err)
	}
}

// renderProjects always leads with the project number.
func (a *app) renderProjects(xs []data.Project, fields ...string) {
	cols := projectColumns
	if len(fields) > 0 {
		cols = table.Select(projectColumns, append([]string{"#"}, fields...)...)
	}
	err := table.Render(a.con.out, xs, cols, a.cfg.Console.ColumnMaxWidth, "No projects found.")
	if err != nil {
		log.PrintErr(err)
	}
}

// found reports a failed read as an empty result.
func found[T any](xs []T, err error) []T {
	if err != nil {
		log.PrintErr(err)
		return nil
	}
	return xs
}

func foundOne[T any](x *T, err error) []T {
	if err != nil {
		log.PrintErr(err)
		return nil
	}
	if x == nil {
		return nil
	}
	return []T{*x}
}
