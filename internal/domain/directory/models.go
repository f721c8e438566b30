package directory

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentHR          Department = "HR"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
	DepartmentProduct     Department = "Product"
)

var Departments = []Department{
	DepartmentEngineering,
	DepartmentHR,
	DepartmentSales,
	DepartmentMarketing,
	DepartmentFinance,
	DepartmentOperations,
	DepartmentProduct,
}

type WorkArrangement string

const (
	WorkOnSite WorkArrangement = "On-site"
	WorkHybrid WorkArrangement = "Hybrid"
	WorkRemote WorkArrangement = "Remote"
)

var WorkArrangements = []WorkArrangement{WorkOnSite, WorkHybrid, WorkRemote}

type EmploymentStatus string

const (
	StatusFullTime EmploymentStatus = "Full-time"
	StatusPartTime EmploymentStatus = "Part-time"
	StatusContract EmploymentStatus = "Contract"
	StatusIntern   EmploymentStatus = "Intern"
)

var EmploymentStatuses = []EmploymentStatus{StatusFullTime, StatusPartTime, StatusContract, StatusIntern}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type Employee struct {
	ID               string            `json:"id"`
	FullName         string            `json:"fullName"`
	Department       Department        `json:"department"`
	Position         string            `json:"position"`
	ReportingManager string            `json:"reportingManager"`
	WorkArrangement  WorkArrangement   `json:"workArrangement"`
	EmploymentStatus EmploymentStatus  `json:"employmentStatus"`
	Email            string            `json:"email"`
	PhoneNumber      string            `json:"phoneNumber"`
	StartDate        Date              `json:"startDate"`
	ProfilePicture   string            `json:"profilePicture,omitempty"`
	Skills           []string          `json:"skills,omitempty"`
	Projects         []string          `json:"projects,omitempty"`
	Certifications   []string          `json:"certifications,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// Clone returns a copy that shares no slices or pointers with e.
func (e Employee) Clone() Employee {
	e.Skills = slices.Clone(e.Skills)
	e.Projects = slices.Clone(e.Projects)
	e.Certifications = slices.Clone(e.Certifications)
	if e.EmergencyContact != nil {
		contact := *e.EmergencyContact
		e.EmergencyContact = &contact
	}
	return e
}

// Date is a calendar date without a time-of-day component.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts RFC3339 or YYYY-MM-DD and drops the time of day.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return NewDate(parsed.Year(), parsed.Month(), parsed.Day()), nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("directory: invalid date %q: %w", value, err)
	}
	return Date{Time: parsed}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func ParseDepartment(value string) (Department, error) {
	for _, dep := range Departments {
		if strings.EqualFold(strings.TrimSpace(value), string(dep)) {
			return dep, nil
		}
	}
	return "", fmt.Errorf("directory: unknown department %q", value)
}

func ParseWorkArrangement(value string) (WorkArrangement, error) {
	for _, arrangement := range WorkArrangements {
		if strings.EqualFold(strings.TrimSpace(value), string(arrangement)) {
			return arrangement, nil
		}
	}
	return "", fmt.Errorf("directory: unknown work arrangement %q", value)
}

func ParseEmploymentStatus(value string) (EmploymentStatus, error) {
	for _, status := range EmploymentStatuses {
		if strings.EqualFold(strings.TrimSpace(value), string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("directory: unknown employment status %q", value)
}
