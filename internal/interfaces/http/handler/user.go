package handler

import (
	"github.com/gin-gonic/gin"
	appdirectory "github.com/stocktrack/backend/internal/application/directory"
	"github.com/stocktrack/backend/internal/interfaces/http/router"
)

// UserHandler serves the user directory endpoints
type UserHandler struct {
	*BaseHandler
	users *appdirectory.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *appdirectory.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(),
		users:       users,
	}
}

// Routes returns the route group for directory users
func (h *UserHandler) Routes() *router.DomainGroup {
	g := router.NewDomainGroup("directory", "/users")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
	return g
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email,max=320"`
}

// Create stores a new directory entry
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.users.CreateUser(c.Request.Context(), appdirectory.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns one directory entry
func (h *UserHandler) Get(c *gin.Context) {
	resp, err := h.users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns every directory entry ordered by name
func (h *UserHandler) List(c *gin.Context) {
	resp, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes one directory entry
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
