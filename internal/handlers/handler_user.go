package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tripvault/tripvault/internal/authz"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/middleware"
)

// userHandler handles HTTP requests for the identity directory.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", middleware.RequireOperation(authz.OpRegisterUser), h.registerUser)
		users.GET("/:id", h.getUser)
		users.GET("/:id/scope", h.getUserScope)
		users.GET("/company/:companyID", middleware.RequireOperation(authz.OpListEmployees), h.listEmployees)
	}
}

// registerUser godoc
// @Summary Register a user
// @Description Creates a new user account with a hashed password
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) registerUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind register request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user
// @Description Retrieves a user by id. Users may read their own record.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, svcErr := h.userService.GetUserByID(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getUserScope godoc
// @Summary Get a user's role and scope
// @Description Resolves a user's role and company/subsidiary scope
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserScopeResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id}/scope [get]
func (h *userHandler) getUserScope(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	scope, svcErr := h.userService.FindUserRoleAndScope(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.UserScopeResponse{
		Role:         string(scope.Role),
		CompanyID:    scope.CompanyID,
		SubsidiaryID: scope.SubsidiaryID,
	})
}

// listEmployees godoc
// @Summary List a company's users
// @Description Retrieves all users belonging to a company or subsidiary
// @Tags users
// @Produce json
// @Param companyID path int true "Company ID"
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /users/company/{companyID} [get]
func (h *userHandler) listEmployees(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company id"})
		return
	}

	users, svcErr := h.userService.ListEmployees(c.Request.Context(), companyID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponseSlice(users))
}
