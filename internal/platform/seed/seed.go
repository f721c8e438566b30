package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"staffdir/internal/domain/auth"
	"staffdir/internal/domain/directory"
)

//go:embed data/directory.yaml
var defaultFixture []byte

var ErrInvalidFixture = errors.New("seed: invalid fixture")

type fixture struct {
	CurrentUser string           `yaml:"currentUser"`
	Users       []userRecord     `yaml:"users"`
	Employees   []employeeRecord `yaml:"employees"`
}

type userRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Email string `yaml:"email"`
}

type employeeRecord struct {
	ID               string                  `yaml:"id"`
	FullName         string                  `yaml:"fullName"`
	Department       string                  `yaml:"department"`
	Position         string                  `yaml:"position"`
	ReportingManager string                  `yaml:"reportingManager"`
	WorkArrangement  string                  `yaml:"workArrangement"`
	EmploymentStatus string                  `yaml:"employmentStatus"`
	Email            string                  `yaml:"email"`
	PhoneNumber      string                  `yaml:"phoneNumber"`
	StartDate        string                  `yaml:"startDate"`
	ProfilePicture   string                  `yaml:"profilePicture"`
	Skills           []string                `yaml:"skills"`
	Projects         []string                `yaml:"projects"`
	Certifications   []string                `yaml:"certifications"`
	EmergencyContact *emergencyContactRecord `yaml:"emergencyContact"`
}

type emergencyContactRecord struct {
	Name         string `yaml:"name"`
	Relationship string `yaml:"relationship"`
	Phone        string `yaml:"phone"`
}

// Default returns the embedded dataset.
func Default() (directory.Snapshot, error) {
	return Parse(defaultFixture)
}

// Load reads the fixture at path, or the embedded dataset when path is empty.
// A non-empty currentUserID replaces the fixture's currentUser.
func Load(path, currentUserID string) (directory.Snapshot, error) {
	data := defaultFixture
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return directory.Snapshot{}, fmt.Errorf("seed: read fixture: %w", err)
		}
		data = raw
	}
	snapshot, err := Parse(data)
	if err != nil {
		return directory.Snapshot{}, err
	}
	if id := strings.TrimSpace(currentUserID); id != "" {
		snapshot.CurrentUserID = id
	}
	return snapshot, nil
}

func Parse(data []byte) (directory.Snapshot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc fixture
	if err := dec.Decode(&doc); err != nil {
		return directory.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	users := make([]auth.User, 0, len(doc.Users))
	for i, rec := range doc.Users {
		user, err := rec.toUser()
		if err != nil {
			return directory.Snapshot{}, fmt.Errorf("%w: users[%d]: %w", ErrInvalidFixture, i, err)
		}
		users = append(users, user)
	}

	employees := make([]directory.Employee, 0, len(doc.Employees))
	for i, rec := range doc.Employees {
		emp, err := rec.toEmployee()
		if err != nil {
			return directory.Snapshot{}, fmt.Errorf("%w: employees[%d]: %w", ErrInvalidFixture, i, err)
		}
		employees = append(employees, emp)
	}

	return directory.Snapshot{
		Employees:     employees,
		Users:         users,
		CurrentUserID: strings.TrimSpace(doc.CurrentUser),
	}, nil
}

func (r userRecord) toUser() (auth.User, error) {
	if strings.TrimSpace(r.ID) == "" {
		return auth.User{}, errors.New("id is required")
	}
	role, err := auth.ParseRole(r.Role)
	if err != nil {
		return auth.User{}, err
	}
	return auth.User{
		ID:    strings.TrimSpace(r.ID),
		Name:  strings.TrimSpace(r.Name),
		Role:  role,
		Email: strings.TrimSpace(r.Email),
	}, nil
}

func (r employeeRecord) toEmployee() (directory.Employee, error) {
	if strings.TrimSpace(r.ID) == "" {
		return directory.Employee{}, errors.New("id is required")
	}
	department, err := directory.ParseDepartment(r.Department)
	if err != nil {
		return directory.Employee{}, err
	}
	arrangement, err := directory.ParseWorkArrangement(r.WorkArrangement)
	if err != nil {
		return directory.Employee{}, err
	}
	status, err := directory.ParseEmploymentStatus(r.EmploymentStatus)
	if err != nil {
		return directory.Employee{}, err
	}
	startDate, err := directory.ParseDate(r.StartDate)
	if err != nil {
		return directory.Employee{}, err
	}

	emp := directory.Employee{
		ID:               strings.TrimSpace(r.ID),
		FullName:         strings.TrimSpace(r.FullName),
		Department:       department,
		Position:         strings.TrimSpace(r.Position),
		ReportingManager: strings.TrimSpace(r.ReportingManager),
		WorkArrangement:  arrangement,
		EmploymentStatus: status,
		Email:            strings.TrimSpace(r.Email),
		PhoneNumber:      strings.TrimSpace(r.PhoneNumber),
		StartDate:        startDate,
		ProfilePicture:   strings.TrimSpace(r.ProfilePicture),
		Skills:           r.Skills,
		Projects:         r.Projects,
		Certifications:   r.Certifications,
	}
	if r.EmergencyContact != nil {
		emp.EmergencyContact = &directory.EmergencyContact{
			Name:         r.EmergencyContact.Name,
			Relationship: r.EmergencyContact.Relationship,
			Phone:        r.EmergencyContact.Phone,
		}
	}
	return emp, nil
}
