package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"staffdir/internal/domain/directory"
	"staffdir/internal/platform/config"
	"staffdir/internal/platform/seed"
	"staffdir/internal/transport/http/shared"
)

func loadConfig(opts *RootOptions) config.Config {
	cfg := config.Load()
	if opts.Fixture != "" {
		cfg.FixturePath = opts.Fixture
	}
	return cfg
}

func loadDirectory(cfg config.Config) (*directory.Service, error) {
	snapshot, err := seed.Load(cfg.FixturePath, cfg.CurrentUserID)
	if err != nil {
		return nil, err
	}
	store, err := directory.NewStore(snapshot)
	if err != nil {
		return nil, err
	}
	return directory.NewService(store), nil
}

// queryFlags mirrors the directory query parameters accepted over HTTP.
type queryFlags struct {
	Search      string
	Departments []string
	Positions   []string
	Managers    []string
	Arrangement []string
	Statuses    []string
	Sort        string
	Order       string
	Page        int
	// paged is set by commands that expose --page; their value is always forwarded.
	paged bool
}

func (q queryFlags) values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	add := func(field directory.Field, items []string) {
		for _, item := range items {
			values.Add(shared.FilterParams[field], item)
		}
	}
	add(directory.FieldDepartment, q.Departments)
	add(directory.FieldPosition, q.Positions)
	add(directory.FieldReportingManager, q.Managers)
	add(directory.FieldWorkArrangement, q.Arrangement)
	add(directory.FieldEmploymentStatus, q.Statuses)
	if q.Sort != "" {
		values.Set("sort", q.Sort)
		if q.Order != "" {
			values.Set("order", q.Order)
		}
	}
	if q.paged {
		values.Set("page", strconv.Itoa(q.Page))
	}
	return values
}

func (q queryFlags) state() (directory.ViewState, error) {
	v := shared.NewValidator()
	state := shared.ParseViewState(q.values(), v)
	if v.HasIssues() {
		return directory.ViewState{}, fmt.Errorf("invalid query: %s", v.Summary())
	}
	return state, nil
}
