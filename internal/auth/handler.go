package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/sva-insights/founder-dashboard/internal/platform/httpx"
	"github.com/sva-insights/founder-dashboard/internal/shared"
	"github.com/sva-insights/founder-dashboard/internal/view"
)

const invalidPassword = "Invalid password"

// Handler wires HTTP endpoints for the password gate.
type Handler struct {
	logger         *slog.Logger
	service        *Service
	templates      *view.Engine
	sessionManager *shared.SessionManager
	csrfManager    *shared.CSRFManager
	validator      *validator.Validate
	loginLimit     int
}

// NewHandler constructs a Handler instance. loginLimit caps login attempts
// per client IP and minute; zero disables the limiter.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, sessions *shared.SessionManager, csrf *shared.CSRFManager, loginLimit int) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:         logger,
		service:        service,
		templates:      templates,
		sessionManager: sessions,
		csrfManager:    csrf,
		validator:      validator.New(),
		loginLimit:     loginLimit,
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/login", h.showLogin)
	r.Group(func(gr chi.Router) {
		if h.loginLimit > 0 {
			gr.Use(httprate.LimitByIP(h.loginLimit, time.Minute))
		}
		gr.Post("/login", h.handleLogin)
		gr.Post("/api/auth/login", h.handleAPILogin)
	})
	r.Post("/logout", h.handleLogout)
}

type loginForm struct {
	Password string `validate:"required,max=256"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginPageData struct {
	Error string
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, loginPageData{})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := loginForm{Password: r.PostFormValue("password")}
	if err := h.validator.Struct(form); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, loginPageData{Error: "Password is required"})
		return
	}
	if err := h.service.Authenticate(r.Context(), form.Password); err != nil {
		h.logger.Info("login rejected", slog.String("remote", r.RemoteAddr))
		h.renderLogin(w, r, http.StatusUnauthorized, loginPageData{Error: invalidPassword})
		return
	}
	sess := shared.SessionFromContext(r.Context())
	if err := h.signIn(sess); err != nil {
		h.logger.Error("sign in", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	sess.AddFlash(shared.FlashMessage{Kind: "success", Message: "Welcome back"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleAPILogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.logger.Error("decode login request", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.service.Authenticate(r.Context(), req.Password); err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			httpx.Error(w, http.StatusUnauthorized, invalidPassword)
			return
		}
		httpx.RespondError(w, err)
		return
	}
	if err := h.signIn(shared.SessionFromContext(r.Context())); err != nil {
		h.logger.Error("sign in", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		h.sessionManager.Destroy(sess)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// signIn marks the session authenticated and rotates its CSRF token.
func (h *Handler) signIn(sess *shared.Session) error {
	if sess == nil {
		return shared.ErrSessionInvalid
	}
	sess.SetAuthenticated(true)
	if h.csrfManager != nil {
		if _, err := h.csrfManager.Rotate(sess); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, data loginPageData) {
	sess := shared.SessionFromContext(r.Context())
	var (
		flash     *shared.FlashMessage
		csrfToken string
	)
	if sess != nil {
		flash = sess.PopFlash()
		token, err := h.csrfManager.EnsureToken(r.Context(), sess)
		if err != nil {
			h.logger.Error("csrf token", slog.Any("error", err))
		}
		csrfToken = token
	}
	viewData := view.TemplateData{
		Title:       "Sign in",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.Render(w, "pages/login.html", viewData); err != nil {
		h.logger.Error("render login", slog.Any("error", err))
	}
}

// ShowLoginForTest exposes the login page handler for tests.
func (h *Handler) ShowLoginForTest(w http.ResponseWriter, r *http.Request) { h.showLogin(w, r) }

// HandleLoginForTest exposes the form login handler for tests.
func (h *Handler) HandleLoginForTest(w http.ResponseWriter, r *http.Request) { h.handleLogin(w, r) }

// HandleAPILoginForTest exposes the JSON login handler for tests.
func (h *Handler) HandleAPILoginForTest(w http.ResponseWriter, r *http.Request) {
	h.handleAPILogin(w, r)
}

// HandleLogoutForTest exposes the logout handler for tests.
func (h *Handler) HandleLogoutForTest(w http.ResponseWriter, r *http.Request) { h.handleLogout(w, r) }
