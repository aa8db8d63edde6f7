package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"users-api/internal/handlers"
	"users-api/internal/mocks"
	"users-api/internal/models"
)

func newTestRouter(users *mocks.MockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(handlers.NewUserHandler(users, nil, zap.NewNop(), false), zap.NewNop())
}

func TestRouterKubilayIgnoresDatabase(t *testing.T) {
	users := new(mocks.MockUserRepository)
	router := newTestRouter(users)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/kubilay", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kubilay kaptanoglu", rec.Body.String())
	users.AssertNotCalled(t, "ListUsers", mock.Anything)
}

func TestRouterUsers(t *testing.T) {
	users := new(mocks.MockUserRepository)
	router := newTestRouter(users)
	users.On("ListUsers", mock.Anything).Return([]models.User{{ID: 1, Username: "alice", Email: "a@x.com"}}, nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"username":"alice","email":"a@x.com"}]`, rec.Body.String())
	users.AssertExpectations(t)
}

func TestRouterUsersDatabaseDown(t *testing.T) {
	users := new(mocks.MockUserRepository)
	router := newTestRouter(users)
	users.On("ListUsers", mock.Anything).Return(nil, assert.AnError).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouterUsersRejectsOtherMethods(t *testing.T) {
	router := newTestRouter(new(mocks.MockUserRepository))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterExposesMetrics(t *testing.T) {
	router := newTestRouter(new(mocks.MockUserRepository))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/kubilay", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "users_api_http_requests_total")
}
