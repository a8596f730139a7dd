// File: internal/handler/alerts/delete.go
package alerts

import (
	"errors"
	"net/http"

	"alertboard/internal/database"
	"alertboard/internal/dto"
	"alertboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// DeleteAlertHandler 軟刪除警報
// @Summary     刪除警報（軟刪除）
// @Description 將 deleted 旗標設為 true，紀錄保留可供還原
// @Tags        alerts
// @Produce     json
// @Param       id path int true "警報 ID"
// @Success     200 {object} dto.OKResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /alerts/{id} [delete]
func DeleteAlertHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := owner(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "invalid or missing token"})
		}
		id, err := alertID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		ctx := c.Request().Context()
		if err := store.SetAlertDeleted(ctx, db, user.ID, id, true); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "alert not found"})
			}
			zerolog.Ctx(ctx).Error().Err(err).Msg("delete alert failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}
		return c.JSON(http.StatusOK, dto.OKResponse{OK: true})
	}
}
