// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"alertboard/internal/database"
	"alertboard/internal/dto"
	"alertboard/internal/service"
	"alertboard/internal/session"
	"alertboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoginHandler 使用 Email/Password 驗證並發行 session token
// @Summary     登入使用者
// @Description 驗證憑證並回傳 opaque token 與基本識別資訊
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB, sessions session.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		ctx := c.Request().Context()

		user, err := store.GetUserByEmail(ctx, db, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "invalid credentials"})
			}
			zerolog.Ctx(ctx).Error().Err(err).Msg("lookup user failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}

		if !service.VerifyPassword(user.PasswordHash, req.Password) {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "invalid credentials"})
		}

		token, err := sessions.Issue(ctx, user.ID)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("issue session failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			Token: token,
			User:  dto.UserSummary{ID: user.ID, Email: user.Email},
		})
	}
}
