package directory

import (
	"context"

	"staffdir/internal/domain/auth"
)

type StoreAPI interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (Employee, error)
	CurrentUser(ctx context.Context) (auth.User, error)
}
