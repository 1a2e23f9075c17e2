package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ncgames/games_go_server/internal/pkg/response"
	"github.com/ncgames/games_go_server/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List serves all users.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"users": users})
}

// Get serves a single user by username.
// GET /api/users/:username
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Param("username"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"user": user})
}
