package repository

import (
	"context"

	"github.com/yukikurage/todo-list/internal/database"
	"github.com/yukikurage/todo-list/internal/models"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create inserts a new todo
func (r *GormTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// FindByID finds a todo by ID
func (r *GormTodoRepository) FindByID(ctx context.Context, id uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// List retrieves todos matching the filter
func (r *GormTodoRepository) List(ctx context.Context, filter TodoFilter) ([]models.Todo, error) {
	todos := []models.Todo{}

	err := r.db.WithContext(ctx).
		Scopes(database.NameContains(filter.Search), database.InCategory(filter.Category)).
		Order("id").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// UpdateState sets the state column only
func (r *GormTodoRepository) UpdateState(ctx context.Context, id uint64, state models.TodoState) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("id = ?", id).
		Update("state", state)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete permanently removes a todo
func (r *GormTodoRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Todo{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
