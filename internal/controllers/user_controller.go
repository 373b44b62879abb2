package controllers

import (
	"net/http"

	"fitlog-be/internal/models"
	"fitlog-be/internal/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser handles POST /api/exercise/new-user
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := uc.userService.CreateUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListUsers handles GET /api/exercise/users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
