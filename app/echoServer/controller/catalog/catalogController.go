package catalog

import (
	"log/slog"
	"net/http"

	cs "librarycirc/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/books/donate
func (h *Controller) Donate(c echo.Context) error {
	var req DonateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	bookID, err := h.Svc.Donate(
		c.Request().Context(),
		normalize(req.Title),
		normalize(req.Author),
		normalize(req.Genre),
		normalize(req.Publisher),
	)
	if err != nil {
		h.Log.Error("donate", "err", err)
		switch cs.Code(err) {
		case cs.ErrMalformedAuthor:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "author name must be 'FirstName LastName'"})
		case cs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"book_id": bookID,
		"message": "book donated",
	})
}
