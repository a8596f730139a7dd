// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"
	"strings"

	"alertboard/internal/dto"
	"alertboard/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LogoutHandler 撤銷當前請求攜帶的 token
// @Summary     登出使用者
// @Description 撤銷 Authorization 標頭中的 token，之後該 token 不再有效
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.OKResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /logout [post]
func LogoutHandler(sessions session.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		// RequireAuth 已驗證過格式，這裡僅取出 token 本體
		parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
		if len(parts) != 2 {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "invalid authorization header format"})
		}

		ctx := c.Request().Context()
		if err := sessions.Revoke(ctx, parts[1]); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("revoke session failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}
		return c.JSON(http.StatusOK, dto.OKResponse{OK: true})
	}
}
