package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/gaienhofen/user-onboarding/internal/application"
	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
	"github.com/gaienhofen/user-onboarding/internal/domain/repository"
	"github.com/gaienhofen/user-onboarding/pkg/response"
	"github.com/gaienhofen/user-onboarding/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
}

// userView is the public shape of a user; the password digest is never exposed.
type userView struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		FirstName: u.FirstName,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.AddNewUser(c.Request.Context(), &entity.User{
		FirstName: req.FirstName,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.fail(c, err, "failed to create user")
		return
	}
	response.Success(c, http.StatusCreated, toView(u), "user created", nil)
}

// FindByEmail GET /api/users?email=
func (h *UserHandler) FindByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"email": "is required"})
		return
	}
	u, err := h.Svc.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err, "failed to find user")
		return
	}
	response.Success(c, http.StatusOK, toView(u), "user", nil)
}

func (h *UserHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, userapp.ErrInvalidArgument):
		response.Error[any](c, http.StatusBadRequest, msg, err.Error())
	case errors.Is(err, repository.ErrEmailTaken):
		response.Error[any](c, http.StatusConflict, msg, err.Error())
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
		}
		response.Error[any](c, http.StatusInternalServerError, msg, nil)
	}
}
