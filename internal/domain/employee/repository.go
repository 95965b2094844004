package employee

import "context"

// EmployeeRepository defines data access for employees. Soft-deleted rows
// are excluded everywhere.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByNumber(ctx context.Context, employeeNumber string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, int64, error)
	Update(ctx context.Context, e Employee) error
	SoftDelete(ctx context.Context, id string, deletedBy string) error
}

// EmployeeService defines employee administration operations.
type EmployeeService interface {
	List(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, int64, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
