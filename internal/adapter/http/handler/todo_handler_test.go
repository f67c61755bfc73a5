package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/cache/memory"
	"todoapi/internal/adapter/database/sqlite"
	repository "todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	. "todoapi/pkg/auth"
	. "todoapi/pkg/test"
	factory "todoapi/pkg/test/factory"
)

var ctx = context.Background()

type TodoHandlerSuite struct {
	suite.Suite
	DB       *sqlite.DB
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository
	Router   *gin.Engine
}

func (s *TodoHandlerSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test-secret")
}

func (s *TodoHandlerSuite) SetupTest() {
	s.DB = InitTestDB()
	s.TodoRepo = repository.NewTodoRepository(s.DB, nil)
	s.UserRepo = repository.NewUserRepository(s.DB, nil)

	todoSvc := service.NewTodoService(s.TodoRepo, memory.New(), nil)
	todoHandler := NewTodoHandler(todoSvc, nil)

	s.Router = setupTodoTestRouter(todoHandler)
}

func (s *TodoHandlerSuite) TearDownTest() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func TestTodoHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerSuite))
}

func setupTodoTestRouter(todoHandler *TodoHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(gin.Recovery())

	protected := router.Group("/")
	protected.Use(middleware.JwtAuthMiddleware())
	{
		protected.GET("/todos", todoHandler.GetAllTodos)
		protected.POST("/todos", todoHandler.CreateTodo)
		protected.PUT("/todos/:id", todoHandler.UpdateTodo)
		protected.DELETE("/todos/:id", todoHandler.DeleteTodo)
	}

	return router
}

func (s *TodoHandlerSuite) createUser(email string) domain.User {
	user, err := s.UserRepo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": email,
	}))
	s.Require().NoError(err)

	return user
}

func (s *TodoHandlerSuite) createTodo(userID int, title string) domain.Todo {
	todo, err := s.TodoRepo.Create(ctx, factory.NewTodo[domain.Todo](map[string]any{
		"Title":  title,
		"UserID": userID,
	}))
	s.Require().NoError(err)

	return todo
}

func (s *TodoHandlerSuite) request(method, path, body string, userID int) *httptest.ResponseRecorder {
	var reader io.Reader

	if body != "" {
		reader = strings.NewReader(body)
	}

	req, _ := http.NewRequest(method, path, reader)

	if userID != 0 {
		token, _ := CreateJwtTokenForUser(userID)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func (s *TodoHandlerSuite) TestGetAllTodosNewestFirstCallerOnly() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")

	first := s.createTodo(alice.ID, "First")
	second := s.createTodo(alice.ID, "Second")
	s.createTodo(bob.ID, "Not yours")

	rr := s.request("GET", "/todos", "", alice.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

	var todos []response.TodoResponse
	json.Unmarshal(rr.Body.Bytes(), &todos)

	Expect(len(todos)).To(Equal(2))
	Expect(todos[0].ID).To(Equal(second.UUID.String()))
	Expect(todos[1].ID).To(Equal(first.UUID.String()))

	for _, todo := range todos {
		Expect(todo.UserID).To(Equal(alice.ID))
	}
}

func (s *TodoHandlerSuite) TestGetAllTodosEmptyArray() {
	alice := s.createUser("alice@example.com")

	rr := s.request("GET", "/todos", "", alice.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(strings.TrimSpace(rr.Body.String())).To(Equal("[]"))
}

func (s *TodoHandlerSuite) TestCreateTodo() {
	alice := s.createUser("alice@example.com")

	rr := s.request("POST", "/todos", `{"title": "Buy milk"}`, alice.ID)

	Expect(rr.Code).To(Equal(http.StatusCreated))

	var todo response.TodoResponse
	json.Unmarshal(rr.Body.Bytes(), &todo)

	Expect(todo.Title).To(Equal("Buy milk"))
	Expect(todo.UserID).To(Equal(alice.ID))
	Expect(todo.Completed).To(BeFalse())
	Expect(todo.ID).To(Not(BeEmpty()))
}

func (s *TodoHandlerSuite) TestCreateTodoIgnoresBodyOwner() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")

	rr := s.request("POST", "/todos", fmt.Sprintf(`{"title": "Mine", "userId": %d}`, bob.ID), alice.ID)

	Expect(rr.Code).To(Equal(http.StatusCreated))

	var todo response.TodoResponse
	json.Unmarshal(rr.Body.Bytes(), &todo)

	Expect(todo.UserID).To(Equal(alice.ID))
}

func (s *TodoHandlerSuite) TestCreateTodoMissingTitle() {
	alice := s.createUser("alice@example.com")

	rr := s.request("POST", "/todos", `{}`, alice.ID)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	var body response.MessageResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Message).To(Equal("Title is required"))
}

func (s *TodoHandlerSuite) TestCreateTodoThenList() {
	alice := s.createUser("alice@example.com")

	created := s.request("POST", "/todos", `{"title": "Round trip"}`, alice.ID)
	Expect(created.Code).To(Equal(http.StatusCreated))

	rr := s.request("GET", "/todos", "", alice.ID)

	var todos []response.TodoResponse
	json.Unmarshal(rr.Body.Bytes(), &todos)

	Expect(len(todos)).To(Equal(1))
	Expect(todos[0].Title).To(Equal("Round trip"))
}

func (s *TodoHandlerSuite) TestUpdateTodoCompletedOnly() {
	alice := s.createUser("alice@example.com")
	todo := s.createTodo(alice.ID, "Keep this title")

	path := fmt.Sprintf("/todos/%s", todo.UUID.String())
	rr := s.request("PUT", path, `{"completed": true}`, alice.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var updated response.TodoResponse
	json.Unmarshal(rr.Body.Bytes(), &updated)

	Expect(updated.Completed).To(BeTrue())
	Expect(updated.Title).To(Equal("Keep this title"))
}

func (s *TodoHandlerSuite) TestUpdateTodoIdempotent() {
	alice := s.createUser("alice@example.com")
	todo := s.createTodo(alice.ID, "Task")

	path := fmt.Sprintf("/todos/%s", todo.UUID.String())

	for i := 0; i < 2; i++ {
		rr := s.request("PUT", path, `{"completed": true}`, alice.ID)

		Expect(rr.Code).To(Equal(http.StatusOK))

		var updated response.TodoResponse
		json.Unmarshal(rr.Body.Bytes(), &updated)

		Expect(updated.Completed).To(BeTrue())
	}
}

func (s *TodoHandlerSuite) TestUpdateTodoOfAnotherUser() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")
	todo := s.createTodo(alice.ID, "Alice's task")

	path := fmt.Sprintf("/todos/%s", todo.UUID.String())
	rr := s.request("PUT", path, `{"completed": true}`, bob.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))

	var body response.MessageResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Message).To(Equal("Todo not found"))
}

func (s *TodoHandlerSuite) TestUpdateTodoUnknownID() {
	alice := s.createUser("alice@example.com")

	rr := s.request("PUT", "/todos/1f7c0a12-0000-0000-0000-000000000000", `{"completed": true}`, alice.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestDeleteTodo() {
	alice := s.createUser("alice@example.com")
	todo := s.createTodo(alice.ID, "Delete me")

	path := fmt.Sprintf("/todos/%s", todo.UUID.String())
	rr := s.request("DELETE", path, "", alice.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var body response.MessageResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Message).To(Equal("Todo deleted"))

	list := s.request("GET", "/todos", "", alice.ID)

	var todos []response.TodoResponse
	json.Unmarshal(list.Body.Bytes(), &todos)

	Expect(len(todos)).To(Equal(0))
}

func (s *TodoHandlerSuite) TestDeleteTodoOfAnotherUser() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")
	todo := s.createTodo(alice.ID, "Alice's task")

	path := fmt.Sprintf("/todos/%s", todo.UUID.String())
	rr := s.request("DELETE", path, "", bob.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))

	var body response.MessageResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Message).To(Equal("Todo not found"))

	// Alice still owns it.
	remaining, err := s.TodoRepo.ListByUser(ctx, alice.ID)
	s.Require().NoError(err)
	Expect(len(remaining)).To(Equal(1))
}

func (s *TodoHandlerSuite) TestRequestsWithoutToken() {
	rr := s.request("GET", "/todos", "", 0)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))

	var body response.MessageResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Message).To(Equal("Unauthorized request"))
}

func (s *TodoHandlerSuite) TestRequestsWithGarbageToken() {
	req, _ := http.NewRequest("GET", "/todos", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}
