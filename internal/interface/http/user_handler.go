package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/domain"
	vo "github.com/oksasatya/go-course-marketplace/internal/domain/valueobject"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
	"github.com/oksasatya/go-course-marketplace/pkg/response"
	"github.com/oksasatya/go-course-marketplace/pkg/validation"
)

type userCreator interface {
	Create(ctx context.Context, cmd application.CreateUserCommand) (vo.UserID, error)
}

type userConfirmer interface {
	Confirm(ctx context.Context, cmd application.ConfirmUserCommand) error
}

type UserHandler struct {
	Creator   userCreator
	Confirmer userConfirmer
	Logger    *logrus.Logger
}

func NewUserHandler(creator userCreator, confirmer userConfirmer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Creator: creator, Confirmer: confirmer, Logger: logger}
}

type registerRequest struct {
	Email     string  `json:"email" binding:"required,email,max=255"`
	Password  string  `json:"password" binding:"required,pwd"`
	Name      string  `json:"name" binding:"required,max=255"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

type registerResponse struct {
	Email string `json:"email"`
}

// Register handles POST /users.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	_, err := h.Creator.Create(c.Request.Context(), application.CreateUserCommand{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, registerResponse{Email: req.Email}, "User created successfully", nil)
	case errors.Is(err, domain.ErrConflict):
		response.Error[any](c, http.StatusConflict, "email already exists", nil)
	case errors.Is(err, domain.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", err.Error())
	default:
		h.internalError(c, "register user failed", err)
	}
}

// Confirm handles POST /users/confirm/:token. Every domain failure is a 400;
// the error field tells them apart.
func (h *UserHandler) Confirm(c *gin.Context) {
	token := c.Param("token")
	err := h.Confirmer.Confirm(c.Request.Context(), application.ConfirmUserCommand{Token: token})
	if err == nil {
		response.Success[any](c, http.StatusOK, nil, "User confirmed successfully", nil)
		return
	}
	if code, ok := confirmFailureCode(err); ok {
		response.Error[any](c, http.StatusBadRequest, "could not confirm user", code)
		return
	}
	h.internalError(c, "confirm user failed", err)
}

func confirmFailureCode(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token", true
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		return "already_confirmed", true
	case errors.Is(err, domain.ErrBannedAccount):
		return "banned_account", true
	case errors.Is(err, domain.ErrNotFound):
		return "not_found", true
	case domain.IsDomainError(err):
		return "invalid_request", true
	}
	return "", false
}

func (h *UserHandler) internalError(c *gin.Context, msg string, err error) {
	if h.Logger != nil {
		helpers.LogError(h.Logger, msg, err, logrus.Fields{"request_id": c.GetString("request_id")})
	}
	response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
}
