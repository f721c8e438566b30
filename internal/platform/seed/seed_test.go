package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"staffdir/internal/domain/auth"
	"staffdir/internal/domain/directory"
)

func TestDefaultDataset(t *testing.T) {
	snapshot, err := Default()
	require.NoError(t, err)
	require.Len(t, snapshot.Employees, 25)
	require.Len(t, snapshot.Users, 3)
	require.Equal(t, "u2", snapshot.CurrentUserID)

	store, err := directory.NewStore(snapshot)
	require.NoError(t, err)

	user, err := store.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, auth.RoleHR, user.Role)

	first := snapshot.Employees[0]
	require.Equal(t, "Sarah Johnson", first.FullName)
	require.Equal(t, directory.DepartmentEngineering, first.Department)
	require.Equal(t, "2018-03-12", first.StartDate.String())
	require.NotNil(t, first.EmergencyContact)
	require.Equal(t, []string{"Go", "Kubernetes", "Team Leadership"}, first.Skills)

	opts := directory.Options(snapshot.Employees)
	require.Len(t, opts.Department, len(directory.Departments))
	require.Equal(t, []string{"Hybrid", "On-site", "Remote"}, opts.WorkArrangement)
}

func TestDefaultDatasetSearchScenario(t *testing.T) {
	snapshot, err := Default()
	require.NoError(t, err)

	got := directory.ApplyFilters(snapshot.Employees, directory.Filters{
		Department: directory.ValueSet{string(directory.DepartmentEngineering)},
	}, "")
	require.Len(t, got, 6)

	// the top-level manager has no reporting manager and sorts last
	sorted := directory.SortRecords(snapshot.Employees, directory.SortSpec{
		Field: directory.FieldReportingManager,
		Order: directory.SortDesc,
	})
	require.Equal(t, "24", sorted[len(sorted)-1].ID)
}

func TestLoadOverridesCurrentUser(t *testing.T) {
	snapshot, err := Load("", "u3")
	require.NoError(t, err)
	require.Equal(t, "u3", snapshot.CurrentUserID)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	doc := `currentUser: a
users:
  - id: a
    name: Ann
    role: admin
employees:
  - id: "x1"
    fullName: Xavier
    department: sales
    workArrangement: remote
    employmentStatus: contract
    startDate: "2021-02-03T10:00:00Z"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	snapshot, err := Load(path, "")
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, snapshot.Users[0].Role)
	require.Len(t, snapshot.Employees, 1)
	emp := snapshot.Employees[0]
	require.Equal(t, directory.DepartmentSales, emp.Department)
	require.Equal(t, directory.WorkRemote, emp.WorkArrangement)
	require.Equal(t, directory.StatusContract, emp.EmploymentStatus)
	require.Equal(t, "2021-02-03", emp.StartDate.String())
	require.Nil(t, emp.EmergencyContact)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)
}

func TestParseRejectsInvalidRecords(t *testing.T) {
	cases := map[string]string{
		"unknown department": "employees:\n  - id: \"1\"\n    department: Legal\n    workArrangement: Remote\n    employmentStatus: Intern\n",
		"missing id":         "employees:\n  - department: Sales\n    workArrangement: Remote\n    employmentStatus: Intern\n",
		"bad role":           "users:\n  - id: u1\n    role: Owner\n",
		"bad date":           "employees:\n  - id: \"1\"\n    department: Sales\n    workArrangement: Remote\n    employmentStatus: Intern\n    startDate: \"03/12/2020\"\n",
		"unknown key":        "employees:\n  - id: \"1\"\n    salary: 100\n",
		"not yaml":           "employees: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.True(t, errors.Is(err, ErrInvalidFixture), "got %v", err)
		})
	}
}
