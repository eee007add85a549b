package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/villastay/villa-api/internal/logger"
	"github.com/villastay/villa-api/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.LocalUser, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResult is packed into the envelope on a successful login
// swagger:model LoginResult
type LoginResult struct {
	// Authenticated user
	User *models.LocalUser `json:"user"`

	// JWT token, valid for 7 days
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a JWT token carrying the user's role
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} models.APIResponse "User and token"
// @Failure 400 {object} models.APIResponse "Invalid body or incorrect credentials"
// @Router /UserAuth/Login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid request body"))
			return
		}

		user, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, "Internal server error"))
			return
		}
		// Same message for an unknown user and a wrong password.
		if user == nil || token == "" {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Username or password is incorrect"))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusOK, LoginResult{
			User:  user,
			Token: token,
		}))
	}
}
