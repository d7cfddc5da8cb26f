package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// CountWorking counts employees with status ACTIVE or ON_LEAVE.
	CountWorking(ctx context.Context) (int, error)
}
