package notification

import (
	"log/slog"
	"net/http"

	ns "librarycirc/service/notification"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ns.Service
	Log *slog.Logger
}

// GET /v1/notifications
func (h *Controller) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	notes, err := h.Svc.List(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("notifications", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": notes})
}
