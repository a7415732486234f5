package domain

// Dataset schema column labels, shared by the csv writer and the
// change log so field names stay consistent across both files.
const (
	FieldTradingName        = "Trading Name"
	FieldRegistrationNumber = "Registration Number"
	FieldPhone              = "Phone Number"
	FieldAddress            = "Address"
	FieldWebsite            = "Website"
	FieldSuperintendent     = "Superintendent Pharmacist"
	FieldSupervising        = "Supervising Pharmacist"
	FieldMatchStatus        = "Match Status"
)

// DatasetColumns returns the dataset schema column labels in output order.
func DatasetColumns() []string {
	return []string{
		FieldTradingName,
		FieldRegistrationNumber,
		FieldPhone,
		FieldAddress,
		FieldWebsite,
		FieldSuperintendent,
		FieldSupervising,
		FieldMatchStatus,
	}
}

// Value returns the record's value for the named schema column.
func (r EnrichedRecord) Value(column string) string {
	switch column {
	case FieldTradingName:
		return r.Name
	case FieldRegistrationNumber:
		return r.RegistrationNumber
	case FieldPhone:
		return r.Phone
	case FieldAddress:
		return r.Address
	case FieldWebsite:
		return r.Website
	case FieldSuperintendent:
		return r.Superintendent
	case FieldSupervising:
		return r.Supervising
	case FieldMatchStatus:
		return string(r.Status)
	}
	return ""
}

// ChangeType classifies a difference between two dataset generations.
type ChangeType string

const (
	// ChangeAdded marks a record present only in the new dataset.
	ChangeAdded ChangeType = "added"
	// ChangeRemoved marks a record present only in the old dataset.
	ChangeRemoved ChangeType = "removed"
	// ChangeUpdated marks a field whose value differs between generations.
	ChangeUpdated ChangeType = "updated"
)

// Change is one row of the change log: a record that appeared or
// disappeared, or a single field that changed value. Updates produce
// one Change per differing field.
type Change struct {
	// Type is the kind of change.
	Type ChangeType

	// Name is the trading name of the affected record.
	Name string

	// RegistrationNumber identifies the pharmacy when known.
	RegistrationNumber string

	// Field names the changed column for updates, empty otherwise.
	Field string

	// OldValue is the previous field value for updates, empty otherwise.
	OldValue string

	// NewValue is the current field value for updates, empty otherwise.
	NewValue string
}
