package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/userhub/user-service/internal/users/repository"
	"github.com/userhub/user-service/internal/users/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	h := NewHandler(service.NewService(repository.NewMemoryRepository()), true)
	h.Register(g.Group("/api"))
	return g
}

func do(t *testing.T, g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
	Error   string          `json:"error"`
}

type userDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	CompanyName string `json:"companyName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

const annLee = `{"name":"Ann Lee","address":"1 Main St","phoneNumber":"5551234567","companyName":"Acme"}`

func TestUserLifecycle(t *testing.T) {
	g := newTestRouter()

	// create
	w := do(t, g, http.MethodPost, "/api/users", annLee)
	require.Equal(t, http.StatusCreated, w.Code)
	e := decode(t, w)
	require.True(t, e.Success)
	var created userDTO
	require.NoError(t, json.Unmarshal(e.Data, &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	// get returns the same four fields
	w = do(t, g, http.MethodGet, "/api/users/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got userDTO
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	require.Equal(t, "Ann Lee", got.Name)
	require.Equal(t, "1 Main St", got.Address)
	require.Equal(t, "5551234567", got.PhoneNumber)
	require.Equal(t, "Acme", got.CompanyName)

	// list contains it
	w = do(t, g, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []userDTO
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	require.Len(t, list, 1)

	// delete, then get -> 404
	w = do(t, g, http.MethodDelete, "/api/users/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, decode(t, w).Success)

	w = do(t, g, http.MethodGet, "/api/users/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decode(t, w).Message)
}

func TestCreateValidationError(t *testing.T) {
	g := newTestRouter()

	w := do(t, g, http.MethodPost, "/api/users", `{"name":"","address":"","phoneNumber":"123","companyName":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decode(t, w)
	require.False(t, e.Success)
	require.Equal(t, "Validation Error", e.Message)
	require.Len(t, e.Errors, 4)
	require.Contains(t, e.Errors, "Phone number must be exactly 10 digits")

	// nothing persisted
	w = do(t, g, http.MethodGet, "/api/users", "")
	var list []userDTO
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	require.Empty(t, list)
}

func TestMalformedIDNeverServerError(t *testing.T) {
	g := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		body := ""
		if method == http.MethodPut {
			body = `{"name":"x"}`
		}
		w := do(t, g, method, "/api/users/not-a-hex-id", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "method %s", method)
		require.Equal(t, "Invalid user ID format", decode(t, w).Message)
	}
}

func TestWellFormedMissingIDIsNotFound(t *testing.T) {
	g := newTestRouter()
	missing := "64a1f0aa1b2c3d4e5f607182"

	w := do(t, g, http.MethodGet, "/api/users/"+missing, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, g, http.MethodPut, "/api/users/"+missing, `{"name":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, g, http.MethodDelete, "/api/users/"+missing, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartialUpdate(t *testing.T) {
	g := newTestRouter()

	w := do(t, g, http.MethodPost, "/api/users", annLee)
	var created userDTO
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))

	w = do(t, g, http.MethodPut, "/api/users/"+created.ID, `{"companyName":"Globex"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated userDTO
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
	require.Equal(t, "Globex", updated.CompanyName)
	require.Equal(t, "Ann Lee", updated.Name)
	require.Equal(t, "1 Main St", updated.Address)
	require.Equal(t, "5551234567", updated.PhoneNumber)

	// invalid merged record is rejected and record stays intact
	w = do(t, g, http.MethodPut, "/api/users/"+created.ID, `{"phoneNumber":"123"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, g, http.MethodGet, "/api/users/"+created.ID, "")
	var got userDTO
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	require.Equal(t, "5551234567", got.PhoneNumber)
}

func TestMalformedBody(t *testing.T) {
	g := newTestRouter()

	w := do(t, g, http.MethodPost, "/api/users", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid request body", decode(t, w).Message)
}
