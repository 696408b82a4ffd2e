package app

import (
	"fmt"
	"strings"

	"github.com/poise/poisepms/internal/data"
)

func peopleMenu() string {
	var b strings.Builder
	b.WriteString("Select the type of people to manage...\n")
	for i, r := range data.Roles() {
		fmt.Fprintf(&b, "%d. %ss\n", i+1, r.Title())
	}
	b.WriteString("0. Back")
	return b.String()
}

func (a *app) managePeople() error {
	roles := data.Roles()
	for {
		choice, err := a.con.choice(peopleMenu())
		if err != nil {
			return err
		}
		if choice == "0" {
			a.con.println()
			return nil
		}
		var role data.Role
		for i, r := range roles {
			if choice == fmt.Sprint(i+1) {
				role = r
			}
		}
		if role == "" {
			a.con.invalidChoice()
			continue
		}

		xs, back, err := a.findPersons(role)
		if err != nil {
			return err
		}
		if back {
			continue
		}
		if len(xs) == 0 {
			a.con.println("No people found.")
			a.con.divider()
			continue
		}

		a.renderPersons(xs)
		if len(xs) == 1 {
			if err := a.deletePerson(xs[0]); err != nil {
				return err
			}
		} else {
			a.con.printf("%d people match your criteria.\n"+
				"Refine your search or select a person by their ID Number (#).\n", len(xs))
		}
		a.con.divider()
	}
}

// findPersons reports back when the user leaves the finder without a
// search.
func (a *app) findPersons(r data.Role) ([]data.Person, bool, error) {
	for {
		a.con.printf("Searching for %s...\n\n", r.Title())
		choice, err := a.con.choice(`1. Find by Number
2. Find by Name
3. Show all

0. Back`)
		if err != nil {
			return nil, false, err
		}

		var xs []data.Person
		switch choice {
		case "1":
			a.con.println("Enter the ID number...")
			id, err := a.con.inputInteger("number: ", false)
			if err != nil {
				return nil, false, err
			}
			xs = foundOne(a.db.GetPerson(r, id))
		case "2":
			a.con.println("Enter the name (or part of it)...")
			name, err := a.con.inputString("name: ")
			if err != nil {
				return nil, false, err
			}
			xs = found(a.db.FindPersonsByName(r, name))
		case "3":
			xs = found(a.db.ListPersons(r, nil))
		case "0":
			a.con.divider()
			return nil, true, nil
		default:
			a.con.invalidChoice()
			continue
		}
		if len(xs) > 0 {
			a.con.printf("Displaying selected %ss...\n", r.Title())
		}
		return xs, false, nil
	}
}

// deletePerson leaves the projects of a deleted person without that person,
// so a customer's projects are counted first as a warning.
func (a *app) deletePerson(p data.Person) error {
	if p.Role == data.Customer {
		n := a.db.CountCustomerProjects(p.ID)
		a.con.printf("WARNING! '%s' has %d projects registered to their name.\n", p.Name, n)
		a.con.println("Those projects will be left without a customer.")
	}
	sure, err := a.con.confirm("Are you sure you would wish to delete this person?", false)
	if err != nil {
		return err
	}
	if !sure {
		a.con.println("Operation cancelled.")
		return nil
	}
	if err := a.db.DeletePerson(p.Role, p.ID); err != nil {
		log.PrintErr(err)
		a.con.println("The person was not deleted.")
		return nil
	}
	a.con.printf("%s '%s' deleted.\n", p.Role.Title(), p.Name)
	return nil
}

// assignPerson offers every person of the role except the one already
// assigned to the project.
func (a *app) assignPerson(p data.Project, r data.Role) error {
	var exclude []int64
	if x := p.Person(r); x != nil {
		exclude = append(exclude, x.ID)
	}
	xs := found(a.db.ListPersons(r, exclude))
	if len(xs) == 0 {
		a.con.printf("No available %ss to assign.\n", r)
		return nil
	}

	a.con.printf("Available %ss:\n", r)
	a.renderPersons(xs)
	a.con.printf("Please select a %s by id (#) to assign...\n", r)
	id, err := a.con.inputInteger(": ", false)
	if err != nil {
		return err
	}
	var ok bool
	for _, x := range xs {
		ok = ok || x.ID == id
	}
	if !ok {
		a.con.printf("Invalid id. Please input a valid %s id.\n", r)
		return nil
	}

	n, err := a.db.AssignPerson(p.ProjectNumber, r, id)
	if err != nil || n == 0 {
		if err != nil {
			log.PrintErr(err, "role", r)
		}
		a.con.println("The project was not updated.")
		return nil
	}
	a.con.printf("%s has been updated successfully.\n", r.Title())
	return nil
}
