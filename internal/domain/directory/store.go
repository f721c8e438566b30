package directory

import (
	"context"
	"fmt"

	"staffdir/internal/domain/auth"
)

// Snapshot is the fixed dataset a Store is built from.
type Snapshot struct {
	Employees     []Employee
	Users         []auth.User
	CurrentUserID string
}

// Store serves a read-only in-memory snapshot. It is safe for concurrent use
// because nothing mutates it after NewStore returns.
type Store struct {
	employees []Employee
	byID      map[string]int
	current   auth.User
}

func NewStore(snapshot Snapshot) (*Store, error) {
	byID := make(map[string]int, len(snapshot.Employees))
	for i, emp := range snapshot.Employees {
		if _, dup := byID[emp.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployeeID, emp.ID)
		}
		byID[emp.ID] = i
	}

	var current auth.User
	found := false
	for _, user := range snapshot.Users {
		if user.ID == snapshot.CurrentUserID {
			current = user
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, snapshot.CurrentUserID)
	}

	return &Store{
		employees: cloneRecords(snapshot.Employees),
		byID:      byID,
		current:   current,
	}, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	return cloneRecords(s.employees), nil
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	idx, ok := s.byID[employeeID]
	if !ok {
		return Employee{}, ErrEmployeeNotFound
	}
	return s.employees[idx].Clone(), nil
}

func (s *Store) CurrentUser(ctx context.Context) (auth.User, error) {
	return s.current, nil
}
