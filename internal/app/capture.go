package app

import (
	"github.com/poise/poisepms/internal/data"
)

func (a *app) captureProject() error {
	a.con.println("Capturing new project...")
	var (
		x   data.NewProject
		err error
	)
	if x.Name, err = a.con.inputOptionalString("Project Name (Leave empty to assign default): "); err != nil {
		return err
	}
	if x.BuildingType, err = a.con.inputString("Building Type: "); err != nil {
		return err
	}
	if x.PhysicalAddress, err = a.con.inputString("Physical address: "); err != nil {
		return err
	}
	if x.ERFNumber, err = a.con.inputString("ERF number: "); err != nil {
		return err
	}
	if x.TotalFee, err = a.con.inputAmount("Total Fee: R"); err != nil {
		return err
	}
	if x.Deadline, err = a.con.inputDate("Deadline (yyyy-mm-dd): ", a.db.Today()); err != nil {
		return err
	}
	if x.CustomerID, err = a.chooseCustomer(); err != nil {
		return err
	}

	p, err := a.db.CreateProject(x)
	if err != nil {
		log.PrintErr(err)
	}
	if p == nil {
		a.con.println("Error creating project. Please try again.")
		return nil
	}

	a.renderProjects([]data.Project{*p}, projectSummaryFields...)
	manage, err := a.con.confirm("Would you like to manage this project?", true)
	if err != nil || !manage {
		return err
	}
	return a.editProject(*p)
}

// chooseCustomer picks an existing customer by key, or creates one on -1.
func (a *app) chooseCustomer() (int64, error) {
	customers := found(a.db.ListPersons(data.Customer, nil))
	a.renderPersons(customers)
	a.con.println("Enter the customer ID (#) if this project is for an existing customer.")
	a.con.println("Enter '-1' to create a new customer instead.")

	for {
		id, err := a.con.inputInteger(": ", true)
		if err != nil {
			return 0, err
		}
		if id == -1 {
			c, err := a.newCustomer()
			if err != nil {
				return 0, err
			}
			if c == nil {
				a.con.println("Error creating customer. Please try again.")
				continue
			}
			return c.ID, nil
		}
		for _, c := range customers {
			if c.ID == id {
				return id, nil
			}
		}
		a.con.println("Invalid ID selected. Please try again.")
	}
}

func (a *app) newCustomer() (*data.Person, error) {
	var (
		x   data.NewPerson
		err error
	)
	if x.Name, err = a.con.inputString("Customer Name and Surname: "); err != nil {
		return nil, err
	}
	if x.TelephoneNumber, err = a.con.inputString("Customer Telephone Number: "); err != nil {
		return nil, err
	}
	if x.EmailAddress, err = a.con.inputString("Customer Email Address: "); err != nil {
		return nil, err
	}
	if x.PhysicalAddress, err = a.con.inputString("Customer Physical Address: "); err != nil {
		return nil, err
	}
	c, err := a.db.CreatePerson(string(data.Customer), x)
	if err != nil {
		log.PrintErr(err)
		return nil, nil
	}
	return c, nil
}
