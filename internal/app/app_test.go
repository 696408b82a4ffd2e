package app

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/poise/poisepms/internal/data"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var farDeadline = time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *data.DB {
	t.Helper()
	db, err := data.Open(data.Config{Driver: data.DriverSqlite, File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { log.ErrIfFail(db.Close) })
	return db
}

func runScript(t *testing.T, db *data.DB, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, Run(db, DefaultConfig(), in, &out))
	return out.String()
}

func createPerson(t *testing.T, db *data.DB, r data.Role, name string) *data.Person {
	t.Helper()
	p, err := db.CreatePerson(string(r), data.NewPerson{
		Name:            name,
		TelephoneNumber: "021 555 0100",
		EmailAddress:    "office@example.com",
		PhysicalAddress: "1 Main Road",
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func createProject(t *testing.T, db *data.DB, name string, customerID int64, deadline time.Time) *data.Project {
	t.Helper()
	p, err := db.CreateProject(data.NewProject{
		Name:            name,
		BuildingType:    "House",
		PhysicalAddress: "12 Long Street",
		ERFNumber:       "ERF-1001",
		TotalFee:        decimal.NewFromInt(1000),
		Deadline:        deadline,
		CustomerID:      customerID,
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestRunExit(t *testing.T) {
	out := runScript(t, openTestDB(t), "0")
	assert.Contains(t, out, "Welcome to the PoisePMS...")
	assert.Contains(t, out, "Exiting program...")
}

func TestRunInvalidChoiceUntilEndOfInput(t *testing.T) {
	out := runScript(t, openTestDB(t), "7", "")
	assert.Equal(t, 2, strings.Count(out, msgInvalidInput))
	assert.NotContains(t, out, "Exiting program...")
}

func TestCaptureProjectWithNewCustomer(t *testing.T) {
	db := openTestDB(t)
	out := runScript(t, db,
		"1",
		"",
		"House",
		"1 Main Road",
		"ERF-77",
		"lots",
		"125000.75",
		"2001-01-01",
		"10/10/2099",
		"2099-06-30",
		"5",
		"-1",
		"Jane Doe",
		"082 123 4567",
		"jane@example.com",
		"2 Side Street",
		"n",
		"0")

	assert.Contains(t, out, "Invalid input. Please enter a positive amount.")
	assert.Contains(t, out, "The date cannot be earlier than today's date.")
	assert.Contains(t, out, "Invalid date format.")
	assert.Contains(t, out, "Invalid ID selected. Please try again.")

	xs, err := db.ReadProjects(nil)
	require.NoError(t, err)
	require.Len(t, xs, 1)
	p := xs[0]
	assert.Equal(t, "Doe", p.ProjectName)
	assert.Equal(t, "House", p.BuildingType)
	assert.Equal(t, "ERF-77", p.ERFNumber)
	assert.True(t, p.TotalFee.Equal(decimal.RequireFromString("125000.75")))
	assert.Equal(t, "2099-06-30", p.Deadline.Format("2006-01-02"))
	require.NotNil(t, p.Customer)
	assert.Equal(t, "Jane Doe", p.Customer.Name)
	assert.Contains(t, out, "| Doe ")
}

func TestCaptureProjectForExistingCustomer(t *testing.T) {
	db := openTestDB(t)
	c := createPerson(t, db, data.Customer, "Sipho Nkosi")
	runScript(t, db,
		"1",
		"Riverside",
		"Warehouse",
		"4 Dock Road",
		"ERF-9",
		"5000",
		"2099-01-01",
		fmt.Sprint(c.ID),
		"y",
		"1",
		"Riverside Depot",
		"0",
		"0")

	xs, err := db.ReadProjects(nil)
	require.NoError(t, err)
	require.Len(t, xs, 1)
	assert.Equal(t, "Riverside Depot", xs[0].ProjectName)
	assert.Equal(t, c.ID, xs[0].Customer.ID)
}

func TestEditProject(t *testing.T) {
	db := openTestDB(t)
	c := createPerson(t, db, data.Customer, "Jane Doe")
	e := createPerson(t, db, data.Engineer, "Eve Engineer")
	p := createProject(t, db, "Harbour House", c.ID, farDeadline)

	out := runScript(t, db,
		"2", "1", "1", fmt.Sprint(p.ProjectNumber),
		"1", "Harbour Lofts",
		"6", "-3", "2500.50",
		"7", "2098-12-31",
		"8", "y",
		"10", "99", "10", fmt.Sprint(e.ID),
		"42",
		"0",
		"0",
		"0")

	assert.Contains(t, out, "Project name updated successfully.")
	assert.Contains(t, out, "Amount paid updated successfully.")
	assert.Contains(t, out, "Project finalised status updated.")
	assert.Contains(t, out, "Invalid id. Please input a valid engineer id.")
	assert.Contains(t, out, "Engineer has been updated successfully.")
	assert.Contains(t, out, msgInvalidInput)

	got, err := db.GetProject(p.ProjectNumber)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Harbour Lofts", got.ProjectName)
	assert.True(t, got.AmountPaidToDate.Equal(decimal.RequireFromString("2500.50")))
	assert.Equal(t, "2098-12-31", got.Deadline.Format("2006-01-02"))
	assert.True(t, got.Finalised)
	assert.NotNil(t, got.CompletionDate)
	require.NotNil(t, got.Engineer)
	assert.Equal(t, e.ID, got.Engineer.ID)
}

func TestDeleteProjectNeedsExactName(t *testing.T) {
	db := openTestDB(t)
	c := createPerson(t, db, data.Customer, "Jane Doe")
	p := createProject(t, db, "Harbour House", c.ID, farDeadline)
	find := []string{"2", "1", "1", fmt.Sprint(p.ProjectNumber)}

	out := runScript(t, db, append(find, "13", "y", "harbour house", "0", "0")...)
	assert.Contains(t, out, "Operation cancelled.")
	got, err := db.GetProject(p.ProjectNumber)
	require.NoError(t, err)
	assert.NotNil(t, got)

	runScript(t, db, append(find, "13", "y", "Harbour House", "0", "0")...)
	got, err = db.GetProject(p.ProjectNumber)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProjectListings(t *testing.T) {
	db := openTestDB(t)
	c := createPerson(t, db, data.Customer, "Jane Doe")
	createProject(t, db, "Harbour House", c.ID, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC))
	createProject(t, db, "Hilltop Villa", c.ID, farDeadline)

	out := runScript(t, db, "2", "2", "4", "0", "0")
	assert.Equal(t, 2, strings.Count(out, "2 projects match your criteria."))
	assert.Contains(t, out, "| Engineer ")

	// the single overdue project opens the editor
	out = runScript(t, db, "2", "3", "0", "0", "0")
	assert.Contains(t, out, "Projects past deadline...")
	assert.Contains(t, out, "Select a field you would wish to update...")
	assert.NotContains(t, out, "Hilltop Villa")

	out = runScript(t, db, "2", "1", "2", "zzz", "0", "0")
	assert.Contains(t, out, "No projects found matching your criteria.")
}

func TestDeleteCustomerWarns(t *testing.T) {
	db := openTestDB(t)
	c := createPerson(t, db, data.Customer, "Jane Doe")
	createProject(t, db, "Harbour House", c.ID, farDeadline)
	createProject(t, db, "Hilltop Villa", c.ID, farDeadline)

	out := runScript(t, db, "3", "5", "1", fmt.Sprint(c.ID), "y", "0", "0")
	assert.Contains(t, out, "Searching for Customer...")
	assert.Contains(t, out, "WARNING! 'Jane Doe' has 2 projects registered to their name.")
	assert.Contains(t, out, "Customer 'Jane Doe' deleted.")

	got, err := db.GetCustomer(c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	xs, err := db.ProjectsWithUnassignedPeople()
	require.NoError(t, err)
	assert.Len(t, xs, 2)
}

func TestFindPeople(t *testing.T) {
	db := openTestDB(t)
	createPerson(t, db, data.Manager, "Mo Manager")
	createPerson(t, db, data.Manager, "Mia Manning")
	m := createPerson(t, db, data.Manager, "Zed Boss")

	out := runScript(t, db,
		"3",
		"1", "3",
		"1", "2", "man",
		"1", "1", fmt.Sprint(m.ID), "n",
		"9",
		"0", "0")
	assert.Contains(t, out, "3 people match your criteria.")
	assert.Contains(t, out, "2 people match your criteria.")
	assert.Contains(t, out, "Operation cancelled.")
	assert.Contains(t, out, msgInvalidInput)

	xs, err := db.ListPersons(data.Manager, nil)
	require.NoError(t, err)
	assert.Len(t, xs, 3)
}

func TestPeopleMenuFollowsRoles(t *testing.T) {
	assert.Equal(t, `Select the type of people to manage...
1. Managers
2. Contractors
3. Engineers
4. Architects
5. Customers
0. Back`, peopleMenu())
}
