package directory

import "staffdir/internal/domain/auth"

const DefaultPageSize = 10

// ViewState is the user-controlled input to the table pipeline. It is never persisted.
type ViewState struct {
	Search  string
	Filters Filters
	Sort    SortSpec
	Page    int
}

func NewViewState() ViewState {
	return ViewState{Page: 1}
}

func (s ViewState) WithSearch(query string) ViewState {
	s.Search = query
	s.Page = 1
	return s
}

func (s ViewState) ToggleFilter(field Field, value string) ViewState {
	set, ok := s.Filters.Get(field)
	if !ok {
		return s
	}
	s.Filters = s.Filters.With(field, set.Toggle(value))
	s.Page = 1
	return s
}

func (s ViewState) ClearFilters() ViewState {
	s.Filters = Filters{}
	s.Page = 1
	return s
}

// CycleSort advances a header click: asc, then desc, then unsorted. A different
// column always starts at asc.
func (s ViewState) CycleSort(field Field) ViewState {
	switch {
	case s.Sort.Field != field || !s.Sort.Active():
		s.Sort = SortSpec{Field: field, Order: SortAsc}
	case s.Sort.Order == SortAsc:
		s.Sort.Order = SortDesc
	default:
		s.Sort = SortSpec{}
	}
	s.Page = 1
	return s
}

func (s ViewState) WithPage(page int) ViewState {
	s.Page = max(page, 1)
	return s
}

func (s ViewState) ActiveFilterCount() int {
	return s.Filters.Count()
}

// View is the interactive state of one directory table: the fixed record
// snapshot, who is looking at it, the current ViewState and the open detail.
type View struct {
	records  []Employee
	viewer   auth.User
	pageSize int
	state    ViewState
	selected *Employee
}

func NewView(records []Employee, viewer auth.User, pageSize int) *View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &View{
		records:  cloneRecords(records),
		viewer:   viewer,
		pageSize: pageSize,
		state:    NewViewState(),
	}
}

func (v *View) State() ViewState {
	return v.state
}

// Restore replaces the current state, e.g. with one decoded from a URL. The
// open detail is left untouched.
func (v *View) Restore(state ViewState) {
	state.Sort = state.Sort.Normalize()
	v.state = state.WithPage(state.Page)
}

func (v *View) Viewer() auth.User {
	return v.viewer
}

func (v *View) Search(query string) {
	v.state = v.state.WithSearch(query)
}

func (v *View) ToggleFilter(field Field, value string) {
	v.state = v.state.ToggleFilter(field, value)
}

func (v *View) ClearFilters() {
	v.state = v.state.ClearFilters()
}

func (v *View) Sort(field Field) {
	v.state = v.state.CycleSort(field)
}

func (v *View) SetPage(page int) {
	v.state = v.state.WithPage(page)
}

func (v *View) Rows() Result {
	return Process(v.records, v.state, v.pageSize)
}

func (v *View) Options() FilterOptions {
	return Options(v.records)
}

func (v *View) RowsClickable() bool {
	return auth.CanViewDetails(v.viewer.Role)
}

// ClickRow opens the detail view for id when the viewer's role allows it.
// For other roles it does nothing and reports false.
func (v *View) ClickRow(id string) bool {
	if !auth.CanViewDetails(v.viewer.Role) {
		return false
	}
	for i := range v.records {
		if v.records[i].ID == id {
			selected := v.records[i]
			v.selected = &selected
			return true
		}
	}
	return false
}

func (v *View) CloseDetail() {
	v.selected = nil
}

func (v *View) Selected() (Employee, bool) {
	if v.selected == nil {
		return Employee{}, false
	}
	return *v.selected, true
}
