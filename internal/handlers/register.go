package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/villastay/villa-api/internal/logger"
	"github.com/villastay/villa-api/internal/models"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	IsUniqueUsername(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, username, password, name, role string) (*models.LocalUser, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`

	// Display name
	// default: John Doe
	Name string `json:"name"`

	// Role tag
	// default: customer
	Role string `json:"role"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// The uniqueness pre-check runs here; the service itself does not repeat it.
// @Summary Register a new user
// @Description Creates a new user account with a unique username. The password is hashed before storing and cleared in the response.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} models.APIResponse "Created user, password cleared"
// @Failure 400 {object} models.APIResponse "Username already exists / invalid request"
// @Router /UserAuth/Register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Validation error: "+err.Error()))
			return
		}

		unique, err := svc.IsUniqueUsername(r.Context(), req.Username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, "Internal server error"))
			return
		}
		if !unique {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Username already exists"))
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password, req.Name, req.Role)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, "Internal server error"))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusOK, user))
	}
}
