package handler

import (
	"net/http"

	"retail/internal/usecase"
	"retail/internal/validator"

	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	uc *usecase.StoreUsecase
}

// DI
func NewStoreHandler(uc *usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.GET("/stores", h.list)
	e.GET("/stores/:id", h.detail)
	e.GET("/stores/:id/products", h.products)
	e.GET("/stores/:id/employees", h.employees)

	admin.POST("/stores", h.create)
	admin.PUT("/stores/:id", h.update)
	admin.DELETE("/stores/:id", h.delete)

	//取扱商品の紐付け
	admin.PUT("/stores/:id/products/:code", h.addProduct)
	admin.DELETE("/stores/:id/products/:code", h.removeProduct)
}

func (h *StoreHandler) list(c echo.Context) error {
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

func (h *StoreHandler) detail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	s, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StoreHandler) products(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	products, err := h.uc.ListProducts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *StoreHandler) employees(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	persons, err := h.uc.ListEmployees(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, persons)
}

func (h *StoreHandler) create(c echo.Context) error {
	var req validator.StoreRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StoreHandler) update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req validator.StoreRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StoreHandler) delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *StoreHandler) addProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AddProduct(c.Request().Context(), id, c.Param("code")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "linked"})
}

func (h *StoreHandler) removeProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.RemoveProduct(c.Request().Context(), id, c.Param("code")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "unlinked"})
}
