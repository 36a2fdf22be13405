package handlers

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"TENNIS-TRACKER_BACK-END/internal/apperr"
	"TENNIS-TRACKER_BACK-END/internal/config"
	"TENNIS-TRACKER_BACK-END/internal/dto"
	"TENNIS-TRACKER_BACK-END/internal/middleware"
	"TENNIS-TRACKER_BACK-END/internal/repository"
	"TENNIS-TRACKER_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users repository.UserRepository
	cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users repository.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

// Signup handles user registration
// @Summary Sign up a new user
// @Description Create a new account with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup payload"
// @Success 201 {object} dto.SignupResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or duplicate email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SignupRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	// Normalize so duplicates like "Test@Email.com" vs "test@email.com"
	// collapse to one account.
	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeRepoError(w, err, "", "Signup failed")
		return
	}

	user, err := h.users.Create(r.Context(), email, string(hashed))
	if err != nil {
		writeRepoError(w, err, "", "Signup failed")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.SignupResponse{
		Message: "User created successfully",
		User:    dto.UserResponse{ID: user.ID, Email: user.Email},
	})
}

// Login handles user login
// @Summary Log in
// @Description Authenticate with email and password; sets the session cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		// An unknown email answers the same as a wrong password.
		if errors.Is(err, apperr.ErrNotFound) {
			writeRepoError(w, apperr.ErrInvalidCredentials, "", "Login failed")
			return
		}
		writeRepoError(w, err, "", "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeRepoError(w, apperr.ErrInvalidCredentials, "", "Login failed")
		return
	}

	token, err := middleware.GenerateToken(user.ID, &h.cfg.JWT)
	if err != nil {
		writeRepoError(w, err, "", "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // true only with HTTPS in production
		MaxAge:   int(h.cfg.JWT.TokenTTL.Seconds()),
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.UserResponse{ID: user.ID, Email: user.Email},
	})
}

// Logout clears the session cookie
// @Summary Log out
// @Description Clears the session cookie; the token itself stays valid until expiry
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.MessageResponse "Logged out"
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Me returns the current user's identity
// @Summary Who am I
// @Description Get the authenticated user's id and email
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.MeResponse "Current user"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err, "User not found", "Failed to fetch user")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MeResponse{
		User: dto.UserResponse{ID: user.ID, Email: user.Email},
	})
}
