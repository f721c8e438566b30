package directory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"staffdir/internal/domain/auth"
)

func TestClickRowRespectsRole(t *testing.T) {
	records := makeEmployees(25)
	target := records[3]

	employeeView := NewView(records, auth.User{ID: "u3", Role: auth.RoleEmployee}, 10)
	before := employeeView.State()
	require.False(t, employeeView.ClickRow(target.ID))
	_, open := employeeView.Selected()
	require.False(t, open)
	require.Equal(t, before, employeeView.State())
	require.False(t, employeeView.RowsClickable())

	hrView := NewView(records, auth.User{ID: "u2", Role: auth.RoleHR}, 10)
	require.True(t, hrView.ClickRow(target.ID))
	selected, open := hrView.Selected()
	require.True(t, open)
	require.Equal(t, target, selected)
	require.True(t, hrView.RowsClickable())
}

func TestClickRowUnknownID(t *testing.T) {
	view := NewView(makeEmployees(3), auth.User{Role: auth.RoleAdmin}, 10)
	require.False(t, view.ClickRow("missing"))
	_, open := view.Selected()
	require.False(t, open)
}

func TestCloseDetailDiscardsSelection(t *testing.T) {
	records := makeEmployees(5)
	view := NewView(records, auth.User{Role: auth.RoleAdmin}, 10)
	require.True(t, view.ClickRow(records[1].ID))

	view.CloseDetail()
	_, open := view.Selected()
	require.False(t, open)

	require.True(t, view.ClickRow(records[2].ID))
	selected, _ := view.Selected()
	require.Equal(t, records[2].ID, selected.ID)
}

func TestCycleSort(t *testing.T) {
	state := NewViewState().WithPage(3)

	state = state.CycleSort(FieldFullName)
	require.Equal(t, SortSpec{Field: FieldFullName, Order: SortAsc}, state.Sort)
	require.Equal(t, 1, state.Page)

	state = state.WithPage(2).CycleSort(FieldFullName)
	require.Equal(t, SortSpec{Field: FieldFullName, Order: SortDesc}, state.Sort)
	require.Equal(t, 1, state.Page)

	state = state.CycleSort(FieldFullName)
	require.Equal(t, SortSpec{}, state.Sort)
	require.False(t, state.Sort.Active())

	state = state.CycleSort(FieldEmail).CycleSort(FieldStartDate)
	require.Equal(t, SortSpec{Field: FieldStartDate, Order: SortAsc}, state.Sort)
}

func TestStateTransitionsResetPage(t *testing.T) {
	base := NewViewState().WithPage(4)

	require.Equal(t, 1, base.WithSearch("ann").Page)
	require.Equal(t, 1, base.ToggleFilter(FieldDepartment, "Sales").Page)
	require.Equal(t, 1, base.ClearFilters().Page)
	require.Equal(t, 1, base.CycleSort(FieldEmail).Page)

	moved := base.WithSearch("ann").WithPage(2)
	require.Equal(t, 2, moved.Page)
	require.Equal(t, "ann", moved.Search)
	require.Equal(t, 1, base.WithPage(-3).Page)
}

func TestToggleFilter(t *testing.T) {
	state := NewViewState().
		ToggleFilter(FieldDepartment, "Sales").
		ToggleFilter(FieldDepartment, "Finance").
		ToggleFilter(FieldWorkArrangement, "Remote")

	require.Equal(t, ValueSet{"Sales", "Finance"}, state.Filters.Department)
	require.Equal(t, 3, state.ActiveFilterCount())

	state = state.ToggleFilter(FieldDepartment, "Sales")
	require.Equal(t, ValueSet{"Finance"}, state.Filters.Department)

	unchanged := state.WithPage(2).ToggleFilter(FieldEmail, "x@example.com")
	require.Equal(t, 2, unchanged.Page)
	require.Equal(t, 2, unchanged.ActiveFilterCount())

	require.Zero(t, state.ClearFilters().ActiveFilterCount())
}

func TestViewRowsRecomputeFromFullCollection(t *testing.T) {
	view := NewView(makeEmployees(25), auth.User{Role: auth.RoleHR}, 10)
	require.Equal(t, 25, view.Rows().Total)

	view.ToggleFilter(FieldDepartment, string(DepartmentSales))
	require.Equal(t, 6, view.Rows().Total)

	view.ToggleFilter(FieldDepartment, string(DepartmentSales))
	view.SetPage(3)
	rows := view.Rows()
	require.Equal(t, 25, rows.Total)
	require.Len(t, rows.Rows, 5)

	view.Search("person 0")
	require.Equal(t, 1, view.State().Page)
	require.Equal(t, 10, view.Rows().Total)
}

func TestRestoreNormalizesState(t *testing.T) {
	view := NewView(makeEmployees(25), auth.User{Role: auth.RoleHR}, 10)
	view.Restore(ViewState{
		Search: "person",
		Sort:   SortSpec{Field: FieldEmail},
		Page:   0,
	})

	state := view.State()
	require.Equal(t, "person", state.Search)
	require.Equal(t, SortSpec{}, state.Sort)
	require.Equal(t, 1, state.Page)

	view.Restore(NewViewState().WithPage(3))
	require.Len(t, view.Rows().Rows, 5)
}
