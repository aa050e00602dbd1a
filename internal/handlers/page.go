package handlers

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/constants"
	"github.com/yukikurage/todo-list/internal/middleware"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/services"
	"github.com/yukikurage/todo-list/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// PageHandler serves the HTML todo list
type PageHandler struct {
	todoService *services.TodoService
}

func NewPageHandler(todoService *services.TodoService) *PageHandler {
	return &PageHandler{
		todoService: todoService,
	}
}

// Index renders the filtered todo list. Filters missing from the query
// string are taken from the session, and the effective filter is saved back.
func (h *PageHandler) Index(c *gin.Context) {
	session := sessions.Default(c)

	search, ok := c.GetQuery("search")
	if !ok {
		search, _ = session.Get(constants.SessionKeySearch).(string)
	}
	category, ok := c.GetQuery("category")
	if !ok {
		category, _ = session.Get(constants.SessionKeyCategory).(string)
	}
	category = utils.NormalizeCategoryFilter(category)

	session.Set(constants.SessionKeySearch, search)
	session.Set(constants.SessionKeyCategory, category)
	flashes := session.Flashes()
	if err := session.Save(); err != nil {
		log.Printf("failed to save session: %v", err)
	}

	todos, err := h.todoService.ListFilteredTodos(c.Request.Context(), search, category)
	if err != nil {
		log.Printf("[%s] failed to list todos: %v", middleware.GetRequestID(c), err)
		c.String(http.StatusInternalServerError, "Failed to load tasks")
		return
	}

	filters := []string{constants.FilterAll}
	for _, cat := range models.Categories {
		filters = append(filters, string(cat))
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Search":     search,
		"Category":   category,
		"Filters":    filters,
		"Categories": models.Categories,
		"Todos":      todos,
		"Flashes":    flashes,
	})
}

// Create adds a todo from the form and redirects back to the list
func (h *PageHandler) Create(c *gin.Context) {
	category := c.DefaultPostForm("category", string(models.CategoryOther))

	_, err := h.todoService.CreateTodo(c.Request.Context(), services.CreateTodoInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    models.TodoCategory(category),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	session := sessions.Default(c)
	session.AddFlash("Task added!")
	if err := session.Save(); err != nil {
		log.Printf("failed to save session: %v", err)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Toggle flips the done checkbox of a todo
func (h *PageHandler) Toggle(c *gin.Context) {
	id, ok := utils.ParseIDParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid todo ID")
		return
	}

	// A todo removed in another tab just disappears on the next render
	if _, err := h.todoService.ToggleDone(c.Request.Context(), id); err != nil && !errors.Is(err, services.ErrTodoNotFound) {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Delete removes a todo
func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid todo ID")
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidState) || errors.Is(err, services.ErrInvalidCategory) || errors.Is(err, services.ErrConstraintViolation) {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("[%s] page request failed: %v", middleware.GetRequestID(c), err)
	c.String(http.StatusInternalServerError, "Something went wrong")
}
