package middleware

//go:generate mockgen -source=$GOFILE -destination=middleware_mocks_test.go -package=middleware_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// AuthTokenHeader carries the session token of a logged-in account.
const AuthTokenHeader = "X-FITTRACK-TOKEN"

type sessionChecker interface {
	UserID(ctx context.Context, token string) (int, error)
}

type AuthMiddlewareHandler struct {
	sessionChecker sessionChecker
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(sessionChecker sessionChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessionChecker: sessionChecker,
		allowedPaths: map[string]bool{
			"/":           true,
			"/a/login":    true,
			"/a/register": true,
		},
	}
}

// AuthCheck resolves the session token to the owning account id and puts
// it in the request context. Every other path requires a valid session.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.sessionChecker.UserID(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrNotLoggedIn) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(r.Context(), userID)))
		})
	}
}
