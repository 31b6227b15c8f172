package recommend

import (
	"log/slog"
	"net/http"

	rs "librarycirc/service/recommend"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// GET /v1/recommendations
func (h *Controller) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	recs, err := h.Svc.Recommend(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("recommendations", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": recs})
}
