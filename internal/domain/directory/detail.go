package directory

import "strings"

type InfoItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Detail struct {
	Employee         Employee          `json:"employee"`
	Initials         string            `json:"initials"`
	Basic            []InfoItem        `json:"basic"`
	Skills           []string          `json:"skills,omitempty"`
	Projects         []string          `json:"projects,omitempty"`
	Certifications   []string          `json:"certifications,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// NewDetail builds the modal model for one record. Optional sections are only
// populated when the record carries non-empty data for them.
func NewDetail(e Employee) Detail {
	d := Detail{
		Employee: e,
		Initials: initials(e.FullName),
		Basic: []InfoItem{
			{Label: "Department", Value: string(e.Department)},
			{Label: "Reporting Manager", Value: e.ReportingManager},
			{Label: "Work Arrangement", Value: string(e.WorkArrangement)},
			{Label: "Employment Status", Value: string(e.EmploymentStatus)},
			{Label: "Email", Value: e.Email},
			{Label: "Phone Number", Value: e.PhoneNumber},
			{Label: "Start Date", Value: formatLongDate(e.StartDate)},
		},
	}
	if len(e.Skills) > 0 {
		d.Skills = e.Skills
	}
	if len(e.Projects) > 0 {
		d.Projects = e.Projects
	}
	if len(e.Certifications) > 0 {
		d.Certifications = e.Certifications
	}
	if e.EmergencyContact != nil {
		contact := *e.EmergencyContact
		d.EmergencyContact = &contact
	}
	return d
}

func (d Detail) HasSkills() bool           { return len(d.Skills) > 0 }
func (d Detail) HasProjects() bool         { return len(d.Projects) > 0 }
func (d Detail) HasCertifications() bool   { return len(d.Certifications) > 0 }
func (d Detail) HasEmergencyContact() bool { return d.EmergencyContact != nil }

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

func formatLongDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("January 2, 2006")
}
