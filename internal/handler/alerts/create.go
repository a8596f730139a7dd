// File: internal/handler/alerts/create.go
package alerts

import (
	"net/http"

	"alertboard/internal/database"
	"alertboard/internal/dto"
	"alertboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// CreateAlertHandler 建立新警報
// @Summary     建立警報
// @Description 為當前使用者建立警報，pinned 與 deleted 初始為 false
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Param       body body dto.CreateAlertRequest true "警報內容"
// @Success     200 {object} dto.AlertResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /alerts [post]
func CreateAlertHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := owner(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "invalid or missing token"})
		}

		var req dto.CreateAlertRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		ctx := c.Request().Context()
		alert, err := store.CreateAlert(ctx, db, user.ID, req.Address, req.Alert, req.Time)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("create alert failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}
		return c.JSON(http.StatusOK, dto.AlertResponse{Alert: *alert})
	}
}
