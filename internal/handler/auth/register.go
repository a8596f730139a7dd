// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"alertboard/internal/database"
	"alertboard/internal/dto"
	"alertboard/internal/service"
	"alertboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RegisterHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 以 email 與密碼建立帳號，成功僅回傳 ok，不自動登入也不回傳哈希
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "註冊資料"
// @Success     200 {object} dto.OKResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		ctx := c.Request().Context()

		// 事前重複檢查僅為快速路徑，真正的防線是資料庫唯一性約束
		if _, err := store.GetUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusConflict, dto.HTTPError{Error: "user exists"})
		} else if !errors.Is(err, store.ErrNotFound) {
			zerolog.Ctx(ctx).Error().Err(err).Msg("lookup user failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("hash password failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}

		if _, err := store.CreateUser(ctx, db, req.Email, hash); err != nil {
			// 與事前檢查之間存在競態，唯一性違規仍須視為重複註冊
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Error: "user exists"})
			}
			zerolog.Ctx(ctx).Error().Err(err).Msg("create user failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}

		return c.JSON(http.StatusOK, dto.OKResponse{OK: true})
	}
}
