package shared

import (
	"net/url"
	"strconv"
	"strings"

	"staffdir/internal/domain/directory"
)

// FilterParams maps each filterable column to its query parameter.
var FilterParams = map[directory.Field]string{
	directory.FieldDepartment:       "department",
	directory.FieldPosition:         "position",
	directory.FieldReportingManager: "manager",
	directory.FieldWorkArrangement:  "workArrangement",
	directory.FieldEmploymentStatus: "employmentStatus",
}

// ParseViewState decodes q, filter, sort, order and page parameters. Filter
// parameters may repeat. Problems are reported to v, which may be nil.
func ParseViewState(values url.Values, v *Validator) directory.ViewState {
	state := directory.NewViewState()
	state.Search = strings.TrimSpace(values.Get("q"))

	for _, field := range directory.FilterFields {
		var set directory.ValueSet
		for _, raw := range values[FilterParams[field]] {
			if value := strings.TrimSpace(raw); value != "" && !set.Has(value) {
				set = append(set, value)
			}
		}
		state.Filters = state.Filters.With(field, set)
	}

	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		field, ok := directory.ParseField(raw)
		if !ok {
			v.Add("sort", "unknown field")
		}
		order := directory.SortAsc
		if rawOrder := strings.TrimSpace(values.Get("order")); rawOrder != "" {
			order = directory.ParseSortOrder(rawOrder)
			if order == directory.SortNone {
				v.Add("order", "must be asc or desc")
			}
		}
		state.Sort = directory.SortSpec{Field: field, Order: order}.Normalize()
	}

	state.Page = parsePage(values, v)
	return state
}

// EncodeViewState is the inverse of ParseViewState. Default values are omitted.
func EncodeViewState(state directory.ViewState) url.Values {
	values := url.Values{}
	if state.Search != "" {
		values.Set("q", state.Search)
	}
	for _, field := range directory.FilterFields {
		set, _ := state.Filters.Get(field)
		for _, value := range set {
			values.Add(FilterParams[field], value)
		}
	}
	if sort := state.Sort.Normalize(); sort.Active() {
		values.Set("sort", string(sort.Field))
		values.Set("order", sort.Order.String())
	}
	if state.Page > 1 {
		values.Set("page", strconv.Itoa(state.Page))
	}
	return values
}
