package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sncblog/backend/auth"
	"github.com/sncblog/backend/database"
	"github.com/sncblog/backend/errs"
	"github.com/sncblog/backend/models"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	adminRepo *database.AdminRepo
	tokens    *auth.TokenIssuer
}

func newAuthHandler(adminRepo *database.AdminRepo, tokens *auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

type setupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse is the envelope returned by setup and login
type tokenResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token"`
	Admin   models.AdminSummary `json:"admin"`
}

// checkSetup reports whether the admin account still needs to be created
// @Summary Check setup state
// @Description Returns whether no admin account exists yet
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool "needsSetup flag"
// @Router /api/auth/check-setup [get]
func (h authHandler) checkSetup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.adminRepo.Count()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "admins", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"needsSetup": count == 0})
	}
}

// setup creates the one and only admin account
// @Summary Create admin account
// @Description One-time admin bootstrap; fails once an admin exists
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} tokenResponse "Token and admin summary"
// @Failure 409 {object} ErrorResponse "Conflict - admin already exists"
// @Router /api/auth/setup [post]
func (h authHandler) setup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setupRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("username is required"))
			return
		}
		if payload.Email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email is required"))
			return
		}
		if payload.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("password is required"))
			return
		}

		count, err := h.adminRepo.Count()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "admins", err))
			return
		}
		if count > 0 {
			h.responder.WriteError(w, errs.NewConflictError("admin account already exists"))
			return
		}

		hash, err := auth.HashPassword(payload.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		admin := models.Admin{
			Username:       payload.Username,
			Email:          payload.Email,
			HashedPassword: hash,
			IsFirstLogin:   false,
		}
		if err := h.adminRepo.Add(&admin); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "admin", err))
			return
		}

		token, err := h.tokens.Issue(admin.ID, admin.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.logger.Info().Str("username", admin.Username).Msg("admin account created")

		h.responder.WriteJSONStatus(w, http.StatusCreated, tokenResponse{
			Message: "admin account created successfully",
			Token:   token,
			Admin:   admin.Summary(),
		})
	}
}

// login verifies the admin credentials and issues a session token
// @Summary Login
// @Description Verifies username/password and returns a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} tokenResponse "Token and admin summary"
// @Failure 401 {object} ErrorResponse "Unauthorized - bad credentials"
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		admin, err := h.adminRepo.FindByUsername(payload.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "admin", err))
			return
		}

		// One message for both unknown username and wrong password so the
		// response never reveals which usernames exist.
		if admin == nil || !auth.CheckPassword(payload.Password, admin.HashedPassword) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid username or password"))
			return
		}

		token, err := h.tokens.Issue(admin.ID, admin.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, tokenResponse{
			Message: "login successful",
			Token:   token,
			Admin:   admin.Summary(),
		})
	}
}
