package http

import (
	"errors"
	"net/http"
	"time"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	sessionCookieName = "sa_session"
	sessionTTL        = 7 * 24 * time.Hour

	actorContextKey = "actor"
)

// ResolveSession reads the session cookie and, when it maps to a live
// session, attaches the actor to the request context. Requests without a
// valid session proceed anonymously; route-level requireAuth decides whether
// that is acceptable.
func (s *Server) ResolveSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return next(ctx)
		}

		actor, err := s.sessions.Resolve(ctx.Request().Context(), cookie.Value)
		if err != nil {
			// Expired and revoked tokens look the same: an anonymous request.
			if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsRequired) {
				return next(ctx)
			}
			return s.respondError(ctx, err)
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

func requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := actorFrom(ctx); !ok {
			return unauthorized(ctx)
		}
		return next(ctx)
	}
}

func actorFrom(ctx echo.Context) (account.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(account.Actor)
	return actor, ok
}

func setSessionCookie(ctx echo.Context, token string, ttl time.Duration) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
