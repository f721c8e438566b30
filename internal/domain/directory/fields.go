package directory

import "strings"

// Field names a scalar column of an Employee record.
type Field string

const (
	FieldID               Field = "id"
	FieldFullName         Field = "fullName"
	FieldDepartment       Field = "department"
	FieldPosition         Field = "position"
	FieldReportingManager Field = "reportingManager"
	FieldWorkArrangement  Field = "workArrangement"
	FieldEmploymentStatus Field = "employmentStatus"
	FieldEmail            Field = "email"
	FieldPhoneNumber      Field = "phoneNumber"
	FieldStartDate        Field = "startDate"
)

var Fields = []Field{
	FieldID,
	FieldFullName,
	FieldDepartment,
	FieldPosition,
	FieldReportingManager,
	FieldWorkArrangement,
	FieldEmploymentStatus,
	FieldEmail,
	FieldPhoneNumber,
	FieldStartDate,
}

// FilterFields are the columns offered as multi-select filters, in display order.
var FilterFields = []Field{
	FieldDepartment,
	FieldPosition,
	FieldReportingManager,
	FieldWorkArrangement,
	FieldEmploymentStatus,
}

// searchFields are matched against the free-text query.
var searchFields = []Field{
	FieldFullName,
	FieldDepartment,
	FieldPosition,
	FieldEmail,
	FieldPhoneNumber,
}

func ParseField(value string) (Field, bool) {
	value = strings.TrimSpace(value)
	for _, field := range Fields {
		if strings.EqualFold(value, string(field)) {
			return field, true
		}
	}
	return "", false
}

func (f Field) Label() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldFullName:
		return "Name"
	case FieldDepartment:
		return "Department"
	case FieldPosition:
		return "Position"
	case FieldReportingManager:
		return "Manager"
	case FieldWorkArrangement:
		return "Work Arrangement"
	case FieldEmploymentStatus:
		return "Status"
	case FieldEmail:
		return "Email"
	case FieldPhoneNumber:
		return "Phone"
	case FieldStartDate:
		return "Start Date"
	}
	return string(f)
}

// Value returns the stringified value of field and whether the record has one.
func (e Employee) Value(field Field) (string, bool) {
	var value string
	switch field {
	case FieldID:
		value = e.ID
	case FieldFullName:
		value = e.FullName
	case FieldDepartment:
		value = string(e.Department)
	case FieldPosition:
		value = e.Position
	case FieldReportingManager:
		value = e.ReportingManager
	case FieldWorkArrangement:
		value = string(e.WorkArrangement)
	case FieldEmploymentStatus:
		value = string(e.EmploymentStatus)
	case FieldEmail:
		value = e.Email
	case FieldPhoneNumber:
		value = e.PhoneNumber
	case FieldStartDate:
		value = e.StartDate.String()
	default:
		return "", false
	}
	return value, value != ""
}
