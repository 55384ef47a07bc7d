package handler

import (
	"net/http"

	"retail/internal/usecase"
	"retail/internal/validator"

	"github.com/labstack/echo/v4"
)

type PersonHandler struct {
	uc *usecase.PersonUsecase
}

// DI
func NewPersonHandler(uc *usecase.PersonUsecase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

func (h *PersonHandler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.GET("/persons", h.list)
	e.GET("/persons/:id", h.detail)

	admin.POST("/persons", h.create)
	admin.PUT("/persons/:id", h.update)
	admin.DELETE("/persons/:id", h.delete)
}

func (h *PersonHandler) list(c echo.Context) error {
	page, limit, msg := paging(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}

	out, err := h.uc.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PersonHandler) detail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) create(c echo.Context) error {
	var req validator.PersonRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PersonHandler) update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req validator.PersonRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
