// File: internal/middleware/middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"alertboard/internal/database"
	"alertboard/internal/dto"
	"alertboard/internal/model"
	"alertboard/internal/session"
	"alertboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const ContextUserKey = "user"

var (
	errMissingAuth   = errors.New("missing authorization header")
	errMalformedAuth = errors.New("invalid authorization header format")
	errInvalidToken  = errors.New("invalid token")
	errUnknownUser   = errors.New("user not found")
)

// resolveUser 將 Authorization 標頭解析為已認證的使用者
// 依序檢查：標頭存在 → Bearer 兩段格式 → registry 有對應 → 使用者仍存在
func resolveUser(c echo.Context, sessions session.Registry, db database.DB) (*model.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingAuth
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errMalformedAuth
	}

	ctx := c.Request().Context()
	sess, err := sessions.Resolve(ctx, parts[1])
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, errInvalidToken
		}
		return nil, err
	}

	user, err := store.GetUserByID(ctx, db, sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errUnknownUser
		}
		return nil, err
	}
	return user, nil
}

// RequireAuth 驗證 Bearer token 並將使用者掛載至 context
// 認證失敗一律回 401；session/使用者儲存本身故障回 500
func RequireAuth(sessions session.Registry, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, sessions, db)
			if err != nil {
				switch err {
				case errMissingAuth, errMalformedAuth, errInvalidToken, errUnknownUser:
					return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: err.Error()})
				default:
					zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("auth resolution failed")
					return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
				}
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireAuth 掛載的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}
