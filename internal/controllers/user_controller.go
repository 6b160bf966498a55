package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/internal/apperror"
	"starwars-api/internal/models"
	"starwars-api/internal/service"
)

// UserController serves the /users endpoints
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers handles GET /users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		apperror.Abort(c, apperror.Internal("Failed to fetch users", err))
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found")
	if !ok {
		return
	}

	user, err := uc.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperror.Abort(c, apperror.NotFound("User not found"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to fetch user", err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req, "Missing required fields") {
		return
	}

	user, err := uc.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			apperror.Abort(c, apperror.Conflict("User with this email already exists"))
			return
		}
		if errors.Is(err, service.ErrPasswordTooLong) {
			apperror.Abort(c, apperror.BadRequest("Password must be at most 72 bytes"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to create user", err))
		return
	}
	c.JSON(http.StatusCreated, user)
}
