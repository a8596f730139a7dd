// File: internal/handler/alerts/update.go
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

// UpdateAlertHandler 部分更新警報
// @Summary     更新警報
// @Description 更新 (id, 擁有者) 對應的警報，省略的欄位不變更；modified 由伺服器時鐘決定
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Param       id   path int true "警報 ID"
// @Param       body body dto.UpdateAlertRequest true "變更欄位"
// @Success     200 {object} dto.AlertResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /alerts/{id} [put]
func UpdateAlertHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := owner(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "invalid or missing token"})
		}
		id, err := alertID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		var req dto.UpdateAlertRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request payload"})
		}

		patch := store.AlertPatch{
			Address: req.Address,
			Alert:   req.Alert,
			Time:    req.Time,
			Pinned:  req.Pinned,
			Deleted: req.Deleted,
		}

		ctx := c.Request().Context()
		alert, err := store.UpdateAlert(ctx, db, user.ID, id, patch)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "alert not found"})
			}
			zerolog.Ctx(ctx).Error().Err(err).Msg("update alert failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}
		return c.JSON(http.StatusOK, dto.AlertResponse{Alert: *alert})
	}
}
