package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/constants"
	"github.com/yukikurage/todo-list/internal/middleware"
	"github.com/yukikurage/todo-list/internal/services"
)

// NewRouter wires the JSON API and the HTML page onto a gin engine
func NewRouter(todoService *services.TodoService, sessionSecret string, secure bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.SetHTMLTemplate(Templates())

	todoHandler := NewTodoHandler(todoService)
	pageHandler := NewPageHandler(todoService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Todo List is running",
		})
	})

	// HTML page
	r.GET("/", pageHandler.Index)
	r.POST("/todos", pageHandler.Create)
	r.POST("/todos/:id/toggle", pageHandler.Toggle)
	r.POST("/todos/:id/delete", pageHandler.Delete)

	// API routes
	api := r.Group("/api")
	{
		todos := api.Group("/todos")
		{
			todos.GET("", todoHandler.ListTodos)
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("/:id", todoHandler.GetTodo)
			todos.PATCH("/:id/state", todoHandler.UpdateState)
			todos.POST("/:id/toggle", todoHandler.ToggleTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}
	}

	return r
}
