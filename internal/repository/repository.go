package repository

import (
	"context"

	"github.com/yukikurage/todo-list/internal/models"
)

// TodoRepository defines the interface for todo data access.
// Every method issues exactly one statement.
type TodoRepository interface {
	// Create inserts a todo and fills in its ID and CreatedAt
	Create(ctx context.Context, todo *models.Todo) error

	// FindByID finds a todo by ID
	FindByID(ctx context.Context, id uint64) (*models.Todo, error)

	// List retrieves todos matching the filter, ordered by ID
	List(ctx context.Context, filter TodoFilter) ([]models.Todo, error)

	// UpdateState sets the state of a todo. found is false when no row has the ID.
	UpdateState(ctx context.Context, id uint64, state models.TodoState) (found bool, err error)

	// Delete removes a todo. found is false when no row has the ID.
	Delete(ctx context.Context, id uint64) (found bool, err error)
}

// TodoFilter holds filtering options for listing todos.
// Zero values mean no restriction; Category also accepts the "All" sentinel.
type TodoFilter struct {
	Search   string
	Category string
}
