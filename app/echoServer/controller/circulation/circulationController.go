package circulation

import (
	"log/slog"
	"net/http"
	"strconv"

	cs "librarycirc/service/circulation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/books/available
func (h *Controller) ListAvailable(c echo.Context) error {
	books, err := h.Svc.ListAvailable(c.Request().Context())
	if err != nil {
		h.Log.Error("list available", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": books})
}

// POST /v1/loans
func (h *Controller) Issue(c echo.Context) error {
	var req IssueReq
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

	loanID, err := h.Svc.Issue(c.Request().Context(), uid, req.BookID)
	if err != nil {
		h.Log.Error("issue", "err", err)
		switch cs.Code(err) {
		case cs.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case cs.ErrOutOfStock:
			return c.JSON(http.StatusConflict, echo.Map{"message": "no copies available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"loan_id": loanID,
		"message": "book issued",
	})
}

// POST /v1/loans/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.Return(c.Request().Context(), id); err != nil {
		h.Log.Error("return", "err", err)
		switch cs.Code(err) {
		case cs.ErrLoanNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "loan not found"})
		case cs.ErrAlreadyReturned:
			return c.JSON(http.StatusConflict, echo.Map{"message": "loan already returned"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book returned"})
}

// GET /v1/loans/my
func (h *Controller) OpenLoans(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	loans, err := h.Svc.OpenLoans(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("open loans", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": loans})
}
