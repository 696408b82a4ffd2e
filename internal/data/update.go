package data

import (
	"time"

	"github.com/ansel1/merry"
)

// ProjectField names a scalar column of a project that may be edited
// directly.
type ProjectField string

const (
	FieldProjectName      ProjectField = "project_name"
	FieldBuildingType     ProjectField = "building_type"
	FieldPhysicalAddress  ProjectField = "physical_address"
	FieldERFNumber        ProjectField = "erf_number"
	FieldTotalFee         ProjectField = "total_fee"
	FieldAmountPaidToDate ProjectField = "amount_paid_to_date"
	FieldDeadline         ProjectField = "deadline"
)

var editableFields = map[ProjectField]bool{
	FieldProjectName:      true,
	FieldBuildingType:     true,
	FieldPhysicalAddress:  true,
	FieldERFNumber:        true,
	FieldTotalFee:         true,
	FieldAmountPaidToDate: true,
	FieldDeadline:         true,
}

// SetProjectField writes one scalar field of a project and returns the
// number of rows changed.
func (db *DB) SetProjectField(number int64, field ProjectField, value interface{}) (int64, error) {
	if !editableFields[field] {
		return 0, merry.Appendf(ErrInvalidField, "%q", string(field))
	}
	if t, ok := value.(time.Time); ok {
		value = DateOnly(t)
	}
	return db.ExecAffected("UPDATE projects SET "+string(field)+" = ? WHERE project_number = ?", value, number)
}

// SetFinalised marks the project finalised on today or reopens it. The flag
// and the completion date change together.
func (db *DB) SetFinalised(number int64, finalised bool, today time.Time) (err error) {
	tx, err := db.db.Beginx()
	if err != nil {
		return merry.Wrap(err)
	}
	defer func() {
		if err != nil {
			log.ErrIfFail(tx.Rollback)
		}
	}()

	var completion interface{}
	if finalised {
		completion = DateOnly(today)
	}
	if _, err = tx.Exec(tx.Rebind("UPDATE projects SET finalised = ? WHERE project_number = ?"),
		finalised, number); err != nil {
		return merry.Append(err, "set finalised")
	}
	if _, err = tx.Exec(tx.Rebind("UPDATE projects SET completion_date = ? WHERE project_number = ?"),
		bindArg(completion), number); err != nil {
		return merry.Append(err, "set completion date")
	}
	return merry.Wrap(tx.Commit())
}

// AssignPerson sets the project's reference to a person of the role. The
// person is not checked to exist.
func (db *DB) AssignPerson(number int64, r Role, personID int64) (int64, error) {
	return db.ExecAffected("UPDATE projects SET "+r.ProjectColumn()+" = ? WHERE project_number = ?", personID, number)
}
