// File: internal/handler/alerts/restore.go
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

// RestoreAlertHandler 還原軟刪除的警報
// @Summary     還原警報
// @Description 將 deleted 旗標設回 false
// @Tags        alerts
// @Produce     json
// @Param       id path int true "警報 ID"
// @Success     200 {object} dto.OKResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /alerts/{id}/restore [post]
func RestoreAlertHandler(db database.DB) echo.HandlerFunc {
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
		if err := store.SetAlertDeleted(ctx, db, user.ID, id, false); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "alert not found"})
			}
			zerolog.Ctx(ctx).Error().Err(err).Msg("restore alert failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}
		return c.JSON(http.StatusOK, dto.OKResponse{OK: true})
	}
}
