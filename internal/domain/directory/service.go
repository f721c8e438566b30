package directory

import (
	"context"

	"staffdir/internal/domain/auth"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Query(ctx context.Context, state ViewState, pageSize int) (Result, error) {
	records, err := s.store.ListEmployees(ctx)
	if err != nil {
		return Result{}, err
	}
	return Process(records, state, pageSize), nil
}

// Export returns every record matching state, sorted, without pagination.
func (s *Service) Export(ctx context.Context, state ViewState) ([]Employee, error) {
	records, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return Sorted(records, state), nil
}

func (s *Service) Options(ctx context.Context) (FilterOptions, error) {
	records, err := s.store.ListEmployees(ctx)
	if err != nil {
		return FilterOptions{}, err
	}
	return Options(records), nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (Employee, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

func (s *Service) CurrentUser(ctx context.Context) (auth.User, error) {
	return s.store.CurrentUser(ctx)
}

// NewView opens an interactive view over the current snapshot for viewer.
func (s *Service) NewView(ctx context.Context, viewer auth.User, pageSize int) (*View, error) {
	records, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return NewView(records, viewer, pageSize), nil
}
