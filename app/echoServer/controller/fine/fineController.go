package fine

import (
	"log/slog"
	"net/http"

	fs "librarycirc/service/fine"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc fs.Service
	Log *slog.Logger
}

// GET /v1/fines/my
func (h *Controller) MyFines(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	fines, err := h.Svc.ListFines(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("list fines", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": fines})
}
