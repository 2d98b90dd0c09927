package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/model"
)

// authPayload is returned by register and login.
type authPayload struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// RegisterHandler creates an account and signs the new user in.
// Request Body: RegisterRequest
//
// Anyone may register as a student; staff and admin accounts can only be
// created by an authenticated admin.
func (api *API) RegisterHandler(c *gin.Context) {
	var req RegisterRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateRegisterRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if req.Role != model.RoleStudent {
		caller, ok := currentUser(c)
		if !ok || caller.Role != model.RoleAdmin {
			SendError(c, http.StatusForbidden, ErrorCodeForbidden,
				"Only an admin can create "+string(req.Role)+" accounts")
			return
		}
	}

	hash, err := api.hasher.Hash(req.Password)
	if err != nil {
		api.SendInternalError(c, "registration", err)
		return
	}

	user, err := api.store.CreateUser(c.Request.Context(), model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, internalErrors.ErrAlreadyExists) {
			SendError(c, http.StatusConflict, ErrorCodeAlreadyExists, "User with this email already exists")
			return
		}
		api.SendStoreError(c, "registration", err)
		return
	}

	token, err := api.tokens.Issue(user.ID)
	if err != nil {
		api.SendInternalError(c, "registration", err)
		return
	}

	api.requestLogger(c).Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	SendSuccess(c, http.StatusCreated, "User registered successfully", authPayload{User: user, Token: token})
}

// LoginHandler exchanges credentials for a bearer token.
// Request Body: LoginRequest
func (api *API) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateLoginRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	user, err := api.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, internalErrors.ErrNotFound) {
			sendInvalidCredentials(c)
			return
		}
		api.SendInternalError(c, "login", err)
		return
	}

	ok, err := api.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		api.SendInternalError(c, "login", err)
		return
	}
	if !ok {
		sendInvalidCredentials(c)
		return
	}

	token, err := api.tokens.Issue(user.ID)
	if err != nil {
		api.SendInternalError(c, "login", err)
		return
	}

	SendSuccess(c, http.StatusOK, "Login successful", authPayload{User: user, Token: token})
}

func sendInvalidCredentials(c *gin.Context) {
	SendError(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "Invalid email or password")
}

// GetProfileHandler returns the authenticated user.
func (api *API) GetProfileHandler(c *gin.Context) {
	user, _ := currentUser(c)
	SendSuccess(c, http.StatusOK, "", gin.H{"user": user})
}

// UpdateProfileHandler changes the authenticated user's name or avatar.
// Request Body: model.ProfileUpdate
func (api *API) UpdateProfileHandler(c *gin.Context) {
	var update model.ProfileUpdate
	if result := ValidateJSONBinding(c, &update); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateProfileUpdate(&update); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	current, _ := currentUser(c)
	user, err := api.store.UpdateProfile(c.Request.Context(), current.ID, update)
	if err != nil {
		api.SendStoreError(c, "profile update", err)
		return
	}

	SendSuccess(c, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
}

// ListUsersHandler returns every account, newest first.
func (api *API) ListUsersHandler(c *gin.Context) {
	users, err := api.store.ListUsers(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "listing users", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"users": users})
}
