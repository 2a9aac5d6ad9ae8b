package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

// Response DTOs. The field names are the wire contract the client
// depends on.
type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body with a detail message. When bearer
// is set, a WWW-Authenticate challenge accompanies the response, as the
// token issuance contract requires for credential failures.
func writeError(w http.ResponseWriter, status int, detail string, bearer bool) {
	if bearer {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, status, errorResponse{Detail: detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to the Login API"})
}

// handlePing answers the liveness probe. Clients treat any success status
// with a JSON body as "alive"; no business logic happens here.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "pong"})
}

// handleToken implements the token issuance contract: form-encoded
// credentials in, a signed bearer token out. Credential failures answer
// 401 with a detail message; the password never reaches the logs.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body", false)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	s.logger.Info(ctx, "login attempt", "username", username)

	user, err := s.userService.Authenticate(ctx, username, password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Incorrect username or password", true)
		return
	}

	accessToken, err := auth.GenerateToken(user.Username, s.secretKey, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error", false)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

// handleCurrentUser returns the profile of the user the bearer token was
// issued for. The auth middleware has already verified the token and put
// the username into the request context.
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := usernameFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials", true)
		return
	}

	user, err := s.userService.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusUnauthorized, "Could not validate credentials", true)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", false)
		return
	}

	if user.Disabled {
		writeError(w, http.StatusBadRequest, "Inactive user", false)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *users.User) userResponse {
	return userResponse{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	}
}
