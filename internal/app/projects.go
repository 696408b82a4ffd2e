package app

import (
	"github.com/poise/poisepms/internal/data"
)

func (a *app) manageProjects() error {
	for {
		choice, err := a.con.choice(`1. Find a project
2. View all incomplete projects
3. View all projects past deadline
4. View all projects with unassigned people
0. Back`)
		if err != nil {
			return err
		}

		var xs []data.Project
		switch choice {
		case "1":
			var back bool
			xs, back, err = a.findProjects()
			if err != nil {
				return err
			}
			if back {
				continue
			}
		case "2":
			a.con.println("Incomplete projects...")
			xs = found(a.db.IncompleteProjects())
			a.renderProjects(xs, projectSummaryFields...)
		case "3":
			a.con.println("Projects past deadline...")
			xs = found(a.db.ProjectsPastDeadline(a.db.Today()))
			a.renderProjects(xs, projectSummaryFields...)
		case "4":
			a.con.println("Projects with unassigned people...")
			xs = found(a.db.ProjectsWithUnassignedPeople())
			a.renderProjects(xs, projectStaffFields...)
		case "0":
			a.con.println()
			return nil
		default:
			a.con.invalidChoice()
			continue
		}

		switch len(xs) {
		case 0:
			a.con.println("No projects found matching your criteria.")
		case 1:
			if err := a.editProject(xs[0]); err != nil {
				return err
			}
		default:
			a.con.printf("%d projects match your criteria.\n"+
				"Refine your search or select a project by its Project Number (#).\n", len(xs))
		}
		a.con.divider()
	}
}

// findProjects reports back when the user leaves the finder without a
// search.
func (a *app) findProjects() ([]data.Project, bool, error) {
	for {
		choice, err := a.con.choice(`1. Find by Number
2. Find by Name

0. Back`)
		if err != nil {
			return nil, false, err
		}

		var xs []data.Project
		switch choice {
		case "1":
			a.con.println("Enter the project number...")
			n, err := a.con.inputInteger("number: ", false)
			if err != nil {
				return nil, false, err
			}
			xs = foundOne(a.db.GetProject(n))
		case "2":
			a.con.println("Enter the project name (or part of it)...")
			name, err := a.con.inputString("name: ")
			if err != nil {
				return nil, false, err
			}
			xs = found(a.db.FindProjectsByName(name))
		case "0":
			a.con.divider()
			return nil, true, nil
		default:
			a.con.invalidChoice()
			continue
		}
		a.renderProjects(xs, projectSummaryFields...)
		return xs, false, nil
	}
}
