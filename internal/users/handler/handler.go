package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userhub/user-service/internal/users"
	"github.com/userhub/user-service/internal/users/repository"
	"github.com/userhub/user-service/internal/users/service"
	"github.com/userhub/user-service/pkg/logger"
)

// Handler maps the /api/users REST endpoints onto the user service. It holds
// no business logic: ids are parsed, bodies are bound, and service errors are
// translated into the response envelope.
type Handler struct {
	svc *service.Service
	dev bool
}

// NewHandler creates a user API handler. When dev is false, 5xx responses
// hide the underlying error detail.
func NewHandler(svc *service.Service, dev bool) *Handler {
	return &Handler{svc: svc, dev: dev}
}

// Register mounts the user routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

// response is the envelope shape shared by every endpoint.
type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response{
		Success: true,
		Message: fmt.Sprintf("Retrieved %d users", len(list)),
		Data:    list,
	})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Message: "User retrieved successfully", Data: u})
}

func (h *Handler) create(c *gin.Context) {
	var in users.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "Invalid request body"})
		return
	}
	u, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response{Success: true, Message: "User created successfully", Data: u})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req struct {
		Name        *string `json:"name"`
		Address     *string `json:"address"`
		PhoneNumber *string `json:"phoneNumber"`
		CompanyName *string `json:"companyName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "Invalid request body"})
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, repository.Patch{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Message: "User updated successfully", Data: u})
}

func (h *Handler) remove(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response{
		Success: true,
		Message: "User deleted successfully",
		Data:    gin.H{"id": id.Hex()},
	})
}

func (h *Handler) parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "Invalid user ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// fail translates a service error into the envelope. Validation and
// not-found errors pass through as 4xx; everything else becomes a 500 whose
// detail is only exposed in development mode.
func (h *Handler) fail(c *gin.Context, err error) {
	var ve *users.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, response{
			Success: false,
			Message: "Validation Error",
			Errors:  ve.Messages(),
		})
	case errors.Is(err, users.ErrNotFound):
		c.JSON(http.StatusNotFound, response{Success: false, Message: "User not found"})
	case errors.Is(err, users.ErrInvalidID):
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "Invalid user ID format"})
	default:
		logger.Errorf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		detail := "Something went wrong"
		if h.dev {
			detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, response{
			Success: false,
			Message: "Internal Server Error",
			Error:   detail,
		})
	}
}
