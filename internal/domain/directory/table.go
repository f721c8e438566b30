package directory

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

func (o SortOrder) String() string {
	switch o {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	}
	return ""
}

func ParseSortOrder(value string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "asc", "ascending":
		return SortAsc
	case "desc", "descending":
		return SortDesc
	}
	return SortNone
}

// SortSpec is only active when both Field and Order are set.
type SortSpec struct {
	Field Field
	Order SortOrder
}

func (s SortSpec) Active() bool {
	return s.Field != "" && s.Order != SortNone
}

func (s SortSpec) Normalize() SortSpec {
	if !s.Active() {
		return SortSpec{}
	}
	return s
}

// ValueSet holds the allowed values for one filter column in selection order.
type ValueSet []string

func (s ValueSet) Has(value string) bool {
	return slices.Contains(s, value)
}

func (s ValueSet) Toggle(value string) ValueSet {
	if s.Has(value) {
		out := make(ValueSet, 0, len(s)-1)
		for _, v := range s {
			if v != value {
				out = append(out, v)
			}
		}
		return out
	}
	out := make(ValueSet, 0, len(s)+1)
	out = append(out, s...)
	return append(out, value)
}

type Filters struct {
	Department       ValueSet `json:"department"`
	Position         ValueSet `json:"position"`
	ReportingManager ValueSet `json:"reportingManager"`
	WorkArrangement  ValueSet `json:"workArrangement"`
	EmploymentStatus ValueSet `json:"employmentStatus"`
}

func (f Filters) Get(field Field) (ValueSet, bool) {
	switch field {
	case FieldDepartment:
		return f.Department, true
	case FieldPosition:
		return f.Position, true
	case FieldReportingManager:
		return f.ReportingManager, true
	case FieldWorkArrangement:
		return f.WorkArrangement, true
	case FieldEmploymentStatus:
		return f.EmploymentStatus, true
	}
	return nil, false
}

// With returns a copy of f with the set for field replaced. Non-filterable fields are ignored.
func (f Filters) With(field Field, set ValueSet) Filters {
	switch field {
	case FieldDepartment:
		f.Department = set
	case FieldPosition:
		f.Position = set
	case FieldReportingManager:
		f.ReportingManager = set
	case FieldWorkArrangement:
		f.WorkArrangement = set
	case FieldEmploymentStatus:
		f.EmploymentStatus = set
	}
	return f
}

func (f Filters) Count() int {
	return len(f.Department) + len(f.Position) + len(f.ReportingManager) + len(f.WorkArrangement) + len(f.EmploymentStatus)
}

func (f Filters) Active() bool {
	return f.Count() > 0
}

func (f Filters) allows(e Employee) bool {
	for _, field := range FilterFields {
		set, _ := f.Get(field)
		if len(set) == 0 {
			continue
		}
		value, _ := e.Value(field)
		if !set.Has(value) {
			return false
		}
	}
	return true
}

type FilterOptions struct {
	Department       []string `json:"department"`
	Position         []string `json:"position"`
	ReportingManager []string `json:"reportingManager"`
	WorkArrangement  []string `json:"workArrangement"`
	EmploymentStatus []string `json:"employmentStatus"`
}

func (o FilterOptions) Get(field Field) []string {
	switch field {
	case FieldDepartment:
		return o.Department
	case FieldPosition:
		return o.Position
	case FieldReportingManager:
		return o.ReportingManager
	case FieldWorkArrangement:
		return o.WorkArrangement
	case FieldEmploymentStatus:
		return o.EmploymentStatus
	}
	return nil
}

type Result struct {
	Rows       []Employee `json:"items"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
}

// UniqueValues returns the distinct present values of field in ascending lexical order.
func UniqueValues(records []Employee, field Field) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, record := range records {
		value, ok := record.Value(field)
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	slices.Sort(out)
	return out
}

func Options(records []Employee) FilterOptions {
	return FilterOptions{
		Department:       UniqueValues(records, FieldDepartment),
		Position:         UniqueValues(records, FieldPosition),
		ReportingManager: UniqueValues(records, FieldReportingManager),
		WorkArrangement:  UniqueValues(records, FieldWorkArrangement),
		EmploymentStatus: UniqueValues(records, FieldEmploymentStatus),
	}
}

// ApplyFilters keeps records that pass every column filter and, when query is
// non-empty, contain it case-insensitively in one of the searchable fields.
func ApplyFilters(records []Employee, filters Filters, query string) []Employee {
	folder := cases.Fold()
	needle := ""
	if query != "" {
		needle = folder.String(query)
	}

	out := make([]Employee, 0, len(records))
	for _, record := range records {
		if !filters.allows(record) {
			continue
		}
		if needle != "" && !matchesSearch(folder, record, needle) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesSearch(folder cases.Caser, record Employee, needle string) bool {
	for _, field := range searchFields {
		value, _ := record.Value(field)
		if strings.Contains(folder.String(value), needle) {
			return true
		}
	}
	return false
}

// SortRecords orders a copy of records by spec. Descending is the reverse of the
// ascending order; records without a value for the field stay last either way.
func SortRecords(records []Employee, spec SortSpec) []Employee {
	if !spec.Active() {
		return cloneRecords(records)
	}

	present := make([]Employee, 0, len(records))
	var missing []Employee
	for _, record := range records {
		if _, ok := record.Value(spec.Field); ok {
			present = append(present, record)
		} else {
			missing = append(missing, record)
		}
	}

	slices.SortStableFunc(present, func(a, b Employee) int {
		return compareField(a, b, spec.Field)
	})
	if spec.Order == SortDesc {
		slices.Reverse(present)
	}
	return append(present, missing...)
}

func compareField(a, b Employee, field Field) int {
	if field == FieldStartDate {
		return a.StartDate.Compare(b.StartDate.Time)
	}
	av, _ := a.Value(field)
	bv, _ := b.Value(field)
	return cmp.Compare(av, bv)
}

// Paginate returns the 1-based page of up to pageSize records.
func Paginate(records []Employee, page, pageSize int) []Employee {
	if page < 1 || pageSize < 1 {
		return []Employee{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []Employee{}
	}
	end := min(start+pageSize, len(records))
	return cloneRecords(records[start:end])
}

func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Sorted runs the filter and sort stages without paginating.
func Sorted(records []Employee, state ViewState) []Employee {
	filtered := ApplyFilters(records, state.Filters, state.Search)
	return SortRecords(filtered, state.Sort)
}

// Process runs filter, sort and paginate in that order over the full collection.
func Process(records []Employee, state ViewState, pageSize int) Result {
	sorted := Sorted(records, state)
	page := max(state.Page, 1)
	return Result{
		Rows:       Paginate(sorted, page, pageSize),
		Total:      len(sorted),
		TotalPages: TotalPages(len(sorted), pageSize),
		Page:       page,
		PageSize:   pageSize,
	}
}

func cloneRecords(records []Employee) []Employee {
	out := make([]Employee, len(records))
	for i, e := range records {
		out[i] = e.Clone()
	}
	return out
}
