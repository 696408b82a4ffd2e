package app

import (
	"time"

	"github.com/poise/poisepms/internal/data"
)

const editorMenu = `Select a field you would wish to update...
1. Project Name   2. Building Type   3. Address       4. ERF Number
5. Total Fee      6. Amount Paid     7. Deadline      8. Finalised
9. Manager       10. Engineer       11. Architect    12. Contractor

13. Delete Project

0. Back`

type fieldEdit struct {
	field  data.ProjectField
	prompt string
	done   string
	input  func(c *console, prompt string) (interface{}, error)
}

func inputText(c *console, prompt string) (interface{}, error) {
	return c.inputString(prompt)
}

func inputMoney(c *console, prompt string) (interface{}, error) {
	return c.inputAmount(prompt)
}

func inputAnyDate(c *console, prompt string) (interface{}, error) {
	return c.inputDate(prompt, time.Time{})
}

var fieldEdits = map[string]fieldEdit{
	"1": {data.FieldProjectName, "Enter new project name: ", "Project name updated successfully.", inputText},
	"2": {data.FieldBuildingType, "Enter new building type: ", "Building type updated successfully.", inputText},
	"3": {data.FieldPhysicalAddress, "Enter new physical address: ", "Physical address updated successfully.", inputText},
	"4": {data.FieldERFNumber, "Enter new ERF number: ", "ERF number updated successfully.", inputText},
	"5": {data.FieldTotalFee, "Enter new total fee: R", "Total fee updated successfully.", inputMoney},
	"6": {data.FieldAmountPaidToDate, "Enter new amount paid to date: R", "Amount paid updated successfully.", inputMoney},
	"7": {data.FieldDeadline, "Enter new deadline (yyyy-mm-dd): ", "Deadline updated successfully.", inputAnyDate},
}

var assignRoles = map[string]data.Role{
	"9":  data.Manager,
	"10": data.Engineer,
	"11": data.Architect,
	"12": data.Contractor,
}

// editProject changes one field of the project at a time until the user goes
// back or deletes the project. The project is read again after every change.
func (a *app) editProject(p data.Project) error {
	for {
		choice, err := a.con.choice(editorMenu)
		if err != nil {
			return err
		}
		if e, ok := fieldEdits[choice]; ok {
			if err := a.editField(p, e); err != nil {
				return err
			}
		} else if r, ok := assignRoles[choice]; ok {
			if err := a.assignPerson(p, r); err != nil {
				return err
			}
		} else {
			switch choice {
			case "8":
				if err := a.editFinalised(p); err != nil {
					return err
				}
			case "13":
				return a.deleteProject(p)
			case "0":
				a.con.println()
				return nil
			default:
				a.con.invalidChoice()
				continue
			}
		}

		x := foundOne(a.db.GetProject(p.ProjectNumber))
		if len(x) == 0 {
			a.con.println("The project no longer exists.")
			return nil
		}
		p = x[0]
	}
}

func (a *app) editField(p data.Project, e fieldEdit) error {
	v, err := e.input(a.con, e.prompt)
	if err != nil {
		return err
	}
	n, err := a.db.SetProjectField(p.ProjectNumber, e.field, v)
	if err != nil || n == 0 {
		if err != nil {
			log.PrintErr(err, "field", e.field)
		}
		a.con.println("The project was not updated.")
		return nil
	}
	a.con.println(e.done)
	return nil
}

func (a *app) editFinalised(p data.Project) error {
	finalised, err := a.con.confirm("Is the project finalised?", p.Finalised)
	if err != nil {
		return err
	}
	if err := a.db.SetFinalised(p.ProjectNumber, finalised, a.db.Today()); err != nil {
		log.PrintErr(err)
		a.con.println("The project was not updated.")
		return nil
	}
	a.con.println("Project finalised status updated.")
	return nil
}

// deleteProject asks twice: y/n, then the exact project name.
func (a *app) deleteProject(p data.Project) error {
	sure, err := a.con.confirm("Are you sure you wish to delete this project?", false)
	if err != nil {
		return err
	}
	if sure {
		a.con.println("WARNING: This action is irreversible...")
		a.con.printf("Enter '%s' (case-sensitive) to confirm...\n", p.ProjectName)
		name, err := a.con.readLine()
		if err != nil {
			return err
		}
		if name == p.ProjectName {
			if err := a.db.DeleteProject(p.ProjectNumber); err != nil {
				log.PrintErr(err)
				a.con.println("The project was not deleted.")
				return nil
			}
			a.con.printf("Project '%s' deleted.\n", p.ProjectName)
			return nil
		}
	}
	a.con.println("Operation cancelled.")
	return nil
}
