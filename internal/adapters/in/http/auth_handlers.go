package http

import (
	"net/http"

	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Register handles POST /api/v1/auth/register. The new customer is logged
// in immediately.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), req.Email, req.Name, req.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	user, err := s.registerCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	token, err := s.sessions.Issue(ctx.Request().Context(), user.Actor(), sessionTTL)
	if err != nil {
		return s.respondError(ctx, err)
	}
	setSessionCookie(ctx, token, sessionTTL)

	return ctx.JSON(http.StatusCreated, userFromAggregate(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login. A wrong email and a wrong password
// produce the same response.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	user, err := s.users.GetByEmail(ctx.Request().Context(), req.Email)
	if err != nil {
		return invalidCredentials(ctx)
	}
	if !user.IsActive() {
		return invalidCredentials(ctx)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.Password)); err != nil {
		return invalidCredentials(ctx)
	}

	token, err := s.sessions.Issue(ctx.Request().Context(), user.Actor(), sessionTTL)
	if err != nil {
		return s.respondError(ctx, err)
	}
	setSessionCookie(ctx, token, sessionTTL)

	return ctx.JSON(http.StatusOK, userFromAggregate(user))
}

func invalidCredentials(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "invalid email or password",
	})
}

// Logout handles POST /api/v1/auth/logout. Logging out without a session
// still succeeds.
func (s *Server) Logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err = s.sessions.Revoke(ctx.Request().Context(), cookie.Value); err != nil {
			return s.respondError(ctx, err)
		}
	}
	clearSessionCookie(ctx)
	return ctx.NoContent(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me.
func (s *Server) Me(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	user, err := s.users.Get(ctx.Request().Context(), actor.ID())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromAggregate(user))
}
