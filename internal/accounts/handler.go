package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=accounts_mocks_test.go -package=accounts_test

type accountsRepo interface {
	Create(ctx context.Context, username, passwordHash string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id int) (*Account, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

type sessionService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	repo     accountsRepo
	sessions sessionService
}

func NewHandler(repo accountsRepo, sessions sessionService) *Handler {
	return &Handler{
		repo:     repo,
		sessions: sessions,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	loginAllowedPerMin int,
) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.
		HandleFunc("/register", handler.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	authSubrouter.
		HandleFunc("/login", handler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/logout", handler.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")
	authSubrouter.
		HandleFunc("/password", handler.HandleChangePassword).
		Methods("POST", "OPTIONS").Name("change-password")

	// rate limit the credential endpoints to prevent abuse
	authSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, metricsManager))
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.register")
	defer span.End()

	creds, err := credentialsFromRequest(r)
	if err != nil {
		log.Errorf("register, read credentials: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if creds.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(creds.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	account, err := handler.repo.Create(ctx, creds.Username, passwordHash)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, "username already taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to create account [%s]: %s", creds.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new account registered: %s", account.Username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON,
		[]byte(fmt.Sprintf(`{"id":%d,"username":%q}`, account.ID, account.Username)),
		http.StatusCreated,
	)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.login")
	defer span.End()

	creds, err := credentialsFromRequest(r)
	if err != nil {
		log.Errorf("login, read credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	account, err := handler.repo.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			log.Tracef("[username] failed login attempt for user: %s", creds.Username)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login, get account [%s]: %s", creds.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(creds.Password, account.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", creds.Username)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.sessions.Login(ctx, account.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, token))
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.logout")
	defer span.End()

	authToken := r.Header.Get(middleware.AuthTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.sessions.Logout(ctx, authToken); err != nil {
		log.Tracef("logout failed: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// HandleChangePassword changes the password of the logged-in account.
// The old password must match, otherwise the change is refused.
func (handler *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.changePassword")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("change password, unmarshal json params: %s", err)
		http.Error(w, "change password failed", http.StatusBadRequest)
		return
	}

	if req.OldPassword == "" || req.NewPassword == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	account, err := handler.repo.GetByID(ctx, userID)
	if err != nil {
		log.Errorf("change password, get account %d: %s", userID, err)
		http.Error(w, "change password failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.OldPassword, account.PasswordHash) {
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	newHash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		log.Errorf("change password, hash password: %s", err)
		http.Error(w, "change password failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.UpdatePassword(ctx, userID, newHash); err != nil {
		log.Errorf("change password, update account %d: %s", userID, err)
		http.Error(w, "change password failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "password-changed")
}

func credentialsFromRequest(r *http.Request) (credentialsRequest, error) {
	var creds credentialsRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return credentialsRequest{}, err
		}
		return creds, nil
	}

	if err := r.ParseForm(); err != nil {
		return credentialsRequest{}, err
	}
	return credentialsRequest{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
	}, nil
}
