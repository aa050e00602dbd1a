package dto

import (
	"time"

	"github.com/yukikurage/todo-list/internal/models"
)

// TodoDTO represents a todo in API responses
type TodoDTO struct {
	ID          uint64              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	State       models.TodoState    `json:"state"`
	Category    models.TodoCategory `json:"category"`
	CreatedAt   time.Time           `json:"created_at"`
	CreatedBy   *string             `json:"created_by,omitempty"`
}

// TodoListResponse represents a filtered list of todos
type TodoListResponse struct {
	Todos    []TodoDTO `json:"todos"`
	Search   string    `json:"search"`
	Category string    `json:"category"`
}

// ToTodoDTO converts a Todo model to TodoDTO
func ToTodoDTO(todo models.Todo) TodoDTO {
	return TodoDTO{
		ID:          todo.ID,
		Name:        todo.Name,
		Description: todo.Description,
		State:       todo.State,
		Category:    todo.Category,
		CreatedAt:   todo.CreatedAt,
		CreatedBy:   todo.CreatedBy,
	}
}

// ToTodoListResponse converts a slice of todos to TodoListResponse
func ToTodoListResponse(todos []models.Todo, search, category string) TodoListResponse {
	items := make([]TodoDTO, len(todos))
	for i, todo := range todos {
		items[i] = ToTodoDTO(todo)
	}

	return TodoListResponse{
		Todos:    items,
		Search:   search,
		Category: category,
	}
}
