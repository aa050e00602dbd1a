package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todo-list/internal/database"
	"github.com/yukikurage/todo-list/internal/dto"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"github.com/yukikurage/todo-list/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TodoHandlerTestSuite defines the test suite for the JSON API
type TodoHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *services.TodoService
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *TodoHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(filepath.Join(suite.T().TempDir(), "todo.db")), database.GormConfig(logger.Silent))
	suite.Require().NoError(err)
	suite.Require().NoError(database.EnsureSchema(suite.db))

	suite.service = services.NewTodoService(repository.NewTodoRepository(suite.db))

	gin.SetMode(gin.TestMode)
	suite.router = NewRouter(suite.service, "secret", false)
}

// TearDownTest runs after each test
func (suite *TodoHandlerTestSuite) TearDownTest() {
	suite.Require().NoError(database.Close(suite.db))
}

func (suite *TodoHandlerTestSuite) createTestTodo(name string, state models.TodoState, category models.TodoCategory) *models.Todo {
	todo, err := suite.service.CreateTodo(context.Background(), services.CreateTodoInput{
		Name:        name,
		Description: "Test Description",
		State:       state,
		Category:    category,
	})
	suite.Require().NoError(err)
	return todo
}

func (suite *TodoHandlerTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		var payload []byte
		switch b := body.(type) {
		case []byte:
			payload = b
		default:
			var err error
			payload, err = json.Marshal(b)
			suite.Require().NoError(err)
		}
		req = httptest.NewRequest(method, url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TodoHandlerTestSuite) decodeList(w *httptest.ResponseRecorder) dto.TodoListResponse {
	var response dto.TodoListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *TodoHandlerTestSuite) TestHealth() {
	w := suite.do("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TodoHandlerTestSuite) TestListTodos_Unfiltered() {
	suite.createTestTodo("Buy milk", models.StatePlanned, models.CategoryLife)
	suite.createTestTodo("Write report", models.StateInProgress, models.CategoryWork)

	w := suite.do("GET", "/api/todos", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decodeList(w)
	assert.Len(suite.T(), response.Todos, 2)
	assert.Equal(suite.T(), "All", response.Category)
}

func (suite *TodoHandlerTestSuite) TestListTodos_Filtered() {
	milk := suite.createTestTodo("Buy milk", models.StatePlanned, models.CategoryLife)
	report := suite.createTestTodo("Write report", models.StateInProgress, models.CategoryWork)

	response := suite.decodeList(suite.do("GET", "/api/todos?category=work", nil))
	suite.Require().Len(response.Todos, 1)
	assert.Equal(suite.T(), report.ID, response.Todos[0].ID)

	response = suite.decodeList(suite.do("GET", "/api/todos?search=buy&category=All", nil))
	suite.Require().Len(response.Todos, 1)
	assert.Equal(suite.T(), milk.ID, response.Todos[0].ID)

	response = suite.decodeList(suite.do("GET", "/api/todos?search=buy&category=work", nil))
	assert.Empty(suite.T(), response.Todos)
	assert.NotNil(suite.T(), response.Todos)
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_Success() {
	w := suite.do("POST", "/api/todos", map[string]interface{}{
		"name":        "New Task",
		"description": "Task Description",
		"category":    "school",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.TodoDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotZero(suite.T(), response.ID)
	assert.Equal(suite.T(), "New Task", response.Name)
	assert.Equal(suite.T(), models.StatePlanned, response.State)
	assert.Equal(suite.T(), models.CategorySchool, response.Category)
	assert.False(suite.T(), response.CreatedAt.IsZero())
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_InvalidState() {
	w := suite.do("POST", "/api/todos", map[string]interface{}{
		"name":  "New Task",
		"state": "bogus",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.Todo{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_InvalidRequest() {
	w := suite.do("POST", "/api/todos", []byte("invalid json"))
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TodoHandlerTestSuite) TestGetTodo() {
	todo := suite.createTestTodo("Test Task", models.StatePlanned, models.CategoryOther)

	w := suite.do("GET", "/api/todos/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TodoDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), todo.ID, response.ID)

	assert.Equal(suite.T(), http.StatusNotFound, suite.do("GET", "/api/todos/99", nil).Code)
	assert.Equal(suite.T(), http.StatusBadRequest, suite.do("GET", "/api/todos/abc", nil).Code)
}

func (suite *TodoHandlerTestSuite) TestUpdateState() {
	todo := suite.createTestTodo("Test Task", models.StatePlanned, models.CategoryOther)

	w := suite.do("PATCH", "/api/todos/1/state", map[string]string{"state": "in-progress"})
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	var reloaded models.Todo
	suite.Require().NoError(suite.db.First(&reloaded, todo.ID).Error)
	assert.Equal(suite.T(), models.StateInProgress, reloaded.State)

	w = suite.do("PATCH", "/api/todos/1/state", map[string]string{"state": "bogus"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.do("PATCH", "/api/todos/1/state", map[string]string{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	// Unknown IDs are a no-op
	w = suite.do("PATCH", "/api/todos/99/state", map[string]string{"state": "done"})
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *TodoHandlerTestSuite) TestToggleTodo() {
	suite.createTestTodo("Test Task", models.StatePlanned, models.CategoryOther)

	w := suite.do("POST", "/api/todos/1/toggle", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TodoDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), models.StateDone, response.State)

	assert.Equal(suite.T(), http.StatusNotFound, suite.do("POST", "/api/todos/99/toggle", nil).Code)
}

func (suite *TodoHandlerTestSuite) TestDeleteTodo() {
	todo := suite.createTestTodo("Task to Delete", models.StatePlanned, models.CategoryOther)

	w := suite.do("DELETE", "/api/todos/1", nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	var deleted models.Todo
	err := suite.db.First(&deleted, todo.ID).Error
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)

	// Deleting again is not an error
	w = suite.do("DELETE", "/api/todos/1", nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestTodoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TodoHandlerTestSuite))
}
