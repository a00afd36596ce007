package handler

import (
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/service"
	"surveyforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles workspace member HTTP requests
type UserHandler struct {
	service   service.UserService
	validator *validation.Validator
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(service service.UserService, validator *validation.Validator) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validator,
	}
}

// GetCurrentUser godoc
// @Summary Get the current user
// @Description Returns the current user; an empty workspace yields a guest identity
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetCurrentUser(c *fiber.Ctx) error {
	user, err := h.service.GetCurrentUser(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// ListUsers godoc
// @Summary List users
// @Description Returns all workspace members
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// AddUser godoc
// @Summary Add a user
// @Description Adds a workspace member; a default avatar is assigned when none is supplied
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.AddUserRequest true "User to add"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /users [post]
func (h *UserHandler) AddUser(c *fiber.Ctx) error {
	var req dto.AddUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateAddUserRequest(&req); len(errs) > 0 {
		return errs
	}

	user, err := h.service.AddUser(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partially updates a workspace member; absent fields are kept
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	user, err := h.service.UpdateUser(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes a workspace member; the primary admin cannot be removed
// @Tags users
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
