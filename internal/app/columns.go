package app

import (
	"strconv"
	"time"

	"github.com/poise/poisepms/internal/data"
	"github.com/poise/poisepms/internal/table"
)

type (
	personCol  = table.Column[data.Person]
	projectCol = table.Column[data.Project]
)

var personColumns = func() []personCol {
	return []personCol{
		{
			Header: "#",
			Value: func(p data.Person) (string, bool) {
				return strconv.FormatInt(p.ID, 10), true
			},
		},
		{
			Header: "Name",
			Value: func(p data.Person) (string, bool) {
				return optional(p.Name)
			},
		},
		{
			Header: "Telephone Number",
			Value: func(p data.Person) (string, bool) {
				return optional(p.TelephoneNumber)
			},
		},
		{
			Header: "Email Address",
			Value: func(p data.Person) (string, bool) {
				return optional(p.EmailAddress)
			},
		},
		{
			Header: "Physical Address",
			Value: func(p data.Person) (string, bool) {
				return optional(p.PhysicalAddress)
			},
		},
	}
}()

var projectColumns = func() []projectCol {
	xs := []projectCol{
		{
			Header: "#",
			Value: func(p data.Project) (string, bool) {
				return strconv.FormatInt(p.ProjectNumber, 10), true
			},
		},
		{
			Header: "Project Name",
			Value: func(p data.Project) (string, bool) {
				return p.ProjectName, true
			},
		},
		{
			Header: "Building Type",
			Value: func(p data.Project) (string, bool) {
				return optional(p.BuildingType)
			},
		},
		{
			Header: "Physical Address",
			Value: func(p data.Project) (string, bool) {
				return optional(p.PhysicalAddress)
			},
		},
		{
			Header: "ERF No.",
			Value: func(p data.Project) (string, bool) {
				return optional(p.ERFNumber)
			},
		},
		{
			Header: "Total Fee",
			Value: func(p data.Project) (string, bool) {
				return p.TotalFee.StringFixed(2), true
			},
		},
		{
			Header: "Paid",
			Value: func(p data.Project) (string, bool) {
				return p.AmountPaidToDate.StringFixed(2), true
			},
		},
		{
			Header: "Start Date",
			Value: func(p data.Project) (string, bool) {
				return optionalDate(&p.StartDate)
			},
		},
		{
			Header: "Deadline",
			Value: func(p data.Project) (string, bool) {
				return optionalDate(&p.Deadline)
			},
		},
		{
			Header: "Finalised",
			Value: func(p data.Project) (string, bool) {
				if p.Finalised {
					return "Yes", true
				}
				return "No", true
			},
		},
		{
			Header: "Completion",
			Value: func(p data.Project) (string, bool) {
				return optionalDate(p.CompletionDate)
			},
		},
	}
	for _, r := range []data.Role{data.Engineer, data.Manager, data.Architect, data.Contractor, data.Customer} {
		r := r
		xs = append(xs, projectCol{
			Header: r.Title(),
			Value: func(p data.Project) (string, bool) {
				if x := p.Person(r); x != nil {
					return x.Name, true
				}
				return "", false
			},
		})
	}
	return xs
}()

// projectSummaryFields is what most listings show after the project number.
var projectSummaryFields = []string{
	"Project Name", "Building Type", "Physical Address", "ERF No.",
	"Total Fee", "Start Date", "Deadline", "Customer",
}

var projectStaffFields = []string{
	"Project Name", "Building Type", "Physical Address", "ERF No.",
	"Total Fee", "Start Date", "Deadline",
	"Engineer", "Manager", "Architect", "Contractor", "Customer",
}

func optional(s string) (string, bool) {
	return s, s != ""
}

func optionalDate(t *time.Time) (string, bool) {
	if t == nil || t.IsZero() {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
