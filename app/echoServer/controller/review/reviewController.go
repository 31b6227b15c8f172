package review

import (
	"log/slog"
	"net/http"

	rs "librarycirc/service/review"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/reviews/unrated
func (h *Controller) Unrated(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	books, err := h.Svc.UnratedBooks(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("unrated books", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": books})
}

// POST /v1/reviews
func (h *Controller) Submit(c echo.Context) error {
	var req SubmitReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.Submit(c.Request().Context(), uid, req.BookID, req.Score, req.Review); err != nil {
		h.Log.Error("submit review", "err", err)
		switch rs.Code(err) {
		case rs.ErrInvalidScore:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "score must be between 1 and 5"})
		case rs.ErrDuplicateRating:
			return c.JSON(http.StatusConflict, echo.Map{"message": "you already rated this book"})
		case rs.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "review submitted"})
}

// GET /v1/reviews
func (h *Controller) BrowseAll(c echo.Context) error {
	rows, err := h.Svc.BrowseAll(c.Request().Context())
	if err != nil {
		h.Log.Error("browse reviews", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
