package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTodoNotFound        = errors.New("todo not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrConstraintViolation = errors.New("rejected by storage constraint")
)

// TodoService handles todo business logic
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// CreateTodoInput represents input for creating a todo.
// Empty State and Category fall back to planned and other.
type CreateTodoInput struct {
	Name        string
	Description string
	State       models.TodoState
	Category    models.TodoCategory
}

// CreateTodo validates the enumerations and persists a new todo
func (s *TodoService) CreateTodo(ctx context.Context, input CreateTodoInput) (*models.Todo, error) {
	if input.State == "" {
		input.State = models.StatePlanned
	}
	if input.Category == "" {
		input.Category = models.CategoryOther
	}

	if err := validateState(input.State); err != nil {
		return nil, err
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w %q: must be one of %s", ErrInvalidCategory, input.Category, joinCategories())
	}

	todo := &models.Todo{
		Name:        input.Name,
		Description: input.Description,
		State:       input.State,
		Category:    input.Category,
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", translateStorageError(err))
	}

	return todo, nil
}

// ListTodos returns every todo
func (s *TodoService) ListTodos(ctx context.Context) ([]models.Todo, error) {
	return s.ListFilteredTodos(ctx, "", "")
}

// ListFilteredTodos returns todos whose name contains search and whose
// category equals category. An empty search or a category of "All" drops
// that condition. Search text is used as given, so " " still filters.
//
// An empty category is treated like "All" rather than matching the
// category '' (which no row can have), so a blank filter from a client
// lists everything instead of nothing.
func (s *TodoService) ListFilteredTodos(ctx context.Context, search, category string) ([]models.Todo, error) {
	filter := repository.TodoFilter{
		Search:   search,
		Category: category,
	}

	todos, err := s.todoRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// GetTodo returns a single todo
func (s *TodoService) GetTodo(ctx context.Context, id uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	return todo, nil
}

// UpdateState sets the state of a todo. A missing ID is not an error.
func (s *TodoService) UpdateState(ctx context.Context, id uint64, state models.TodoState) error {
	if err := validateState(state); err != nil {
		return err
	}

	found, err := s.todoRepo.UpdateState(ctx, id, state)
	if err != nil {
		return fmt.Errorf("failed to update todo state: %w", translateStorageError(err))
	}
	if !found {
		log.Printf("UpdateState: todo %d not changed", id)
	}

	return nil
}

// ToggleDone flips a todo between done and planned, the way the
// completion checkbox does, and returns the updated todo.
func (s *TodoService) ToggleDone(ctx context.Context, id uint64) (*models.Todo, error) {
	todo, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	if todo.State == models.StateDone {
		todo.State = models.StatePlanned
	} else {
		todo.State = models.StateDone
	}

	if _, err := s.todoRepo.UpdateState(ctx, id, todo.State); err != nil {
		return nil, fmt.Errorf("failed to toggle todo: %w", translateStorageError(err))
	}

	return todo, nil
}

// DeleteTodo removes a todo. A missing ID is not an error.
func (s *TodoService) DeleteTodo(ctx context.Context, id uint64) error {
	found, err := s.todoRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if !found {
		log.Printf("DeleteTodo: todo %d does not exist", id)
	}

	return nil
}

func validateState(state models.TodoState) error {
	if state.Valid() {
		return nil
	}
	names := make([]string, len(models.States))
	for i, s := range models.States {
		names[i] = string(s)
	}
	return fmt.Errorf("%w %q: must be one of %s", ErrInvalidState, state, strings.Join(names, ", "))
}

func joinCategories() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// translateStorageError marks CHECK constraint failures so callers can
// tell a rejected write from an unavailable store.
func translateStorageError(err error) error {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) || strings.Contains(err.Error(), "CHECK constraint failed") {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return err
}
