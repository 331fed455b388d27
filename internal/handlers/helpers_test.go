package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"productivity-api/internal/auth"
	"productivity-api/internal/database"
	"productivity-api/internal/middleware"
	"productivity-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires an in-memory database and the protected API surface
// the same way routes.SetupRoutes does.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", Register)
	api.POST("/auth/login", Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())

	protected.GET("/tasks", GetTasks)
	protected.POST("/tasks", CreateTask)
	protected.POST("/tasks/reorder", ReorderTasks)
	protected.GET("/tasks/:id", GetTaskByID)
	protected.PATCH("/tasks/:id", UpdateTask)
	protected.DELETE("/tasks/:id", DeleteTask)

	protected.GET("/projects", GetProjects)
	protected.POST("/projects", CreateProject)
	protected.POST("/projects/reorder", ReorderProjects)
	protected.GET("/projects/:id", GetProjectByID)
	protected.PATCH("/projects/:id", UpdateProject)
	protected.DELETE("/projects/:id", DeleteProject)

	protected.GET("/notes", GetNotes)
	protected.POST("/notes", CreateNote)
	protected.POST("/notes/reorder", ReorderNotes)
	protected.GET("/notes/:id", GetNoteByID)
	protected.PATCH("/notes/:id", UpdateNote)
	protected.DELETE("/notes/:id", DeleteNote)

	protected.GET("/user", GetCurrentUser)
	protected.POST("/user/change-password", ChangePassword)

	return r
}

func tokenFor(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
