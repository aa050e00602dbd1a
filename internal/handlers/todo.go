package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/dto"
	apierrors "github.com/yukikurage/todo-list/internal/errors"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/services"
	"github.com/yukikurage/todo-list/internal/utils"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// ListTodos returns todos, optionally filtered by ?search= and ?category=
func (h *TodoHandler) ListTodos(c *gin.Context) {
	search := c.Query("search")
	category := utils.NormalizeCategoryFilter(c.Query("category"))

	todos, err := h.todoService.ListFilteredTodos(c.Request.Context(), search, category)
	if err != nil {
		apierrors.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListResponse(todos, search, category))
}

// GetTodo returns a specific todo by ID
func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, ok := utils.ParseIDParam(c)
	if !ok {
		apierrors.InvalidID(c)
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		apierrors.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// CreateTodo creates a new todo. State and category are optional.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	type CreateTodoRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		State       string `json:"state"`
		Category    string `json:"category"`
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), services.CreateTodoInput{
		Name:        req.Name,
		Description: req.Description,
		State:       models.TodoState(req.State),
		Category:    models.TodoCategory(req.Category),
	})
	if err != nil {
		apierrors.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoDTO(*todo))
}

// UpdateState sets the state of a todo. An unknown ID still succeeds.
func (h *TodoHandler) UpdateState(c *gin.Context) {
	id, ok := utils.ParseIDParam(c)
	if !ok {
		apierrors.InvalidID(c)
		return
	}

	type UpdateStateRequest struct {
		State string `json:"state" binding:"required"`
	}

	var req UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.UpdateState(c.Request.Context(), id, models.TodoState(req.State)); err != nil {
		apierrors.FromServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleTodo flips a todo between done and planned
func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	id, ok := utils.ParseIDParam(c)
	if !ok {
		apierrors.InvalidID(c)
		return
	}

	todo, err := h.todoService.ToggleDone(c.Request.Context(), id)
	if err != nil {
		apierrors.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// DeleteTodo deletes a todo. An unknown ID still succeeds.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := utils.ParseIDParam(c)
	if !ok {
		apierrors.InvalidID(c)
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		apierrors.FromServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
