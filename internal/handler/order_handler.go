package handler

import (
	"net/http"

	"retail/internal/usecase"
	"retail/internal/validator"

	"github.com/labstack/echo/v4"
)

// 注文と明細をまとめて登録する入力
type PlaceOrderRequest struct {
	Order validator.OrderRecord          `json:"order"`
	Lines []validator.OrderDetailsRecord `json:"lines"`
}

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.GET("/orders", h.list)
	e.GET("/orders/:id", h.detail)
	e.GET("/orders/:id/details", h.listDetails)

	admin.POST("/orders", h.create)
	admin.POST("/orders/place", h.place)
	admin.PUT("/orders/:id", h.update)
	admin.DELETE("/orders/:id", h.delete)

	admin.POST("/orders/:id/details", h.addDetail)
	admin.PUT("/orders/:id/details/:detail_id", h.updateDetail)
	admin.DELETE("/orders/:id/details/:detail_id", h.deleteDetail)
}

func (h *OrderHandler) list(c echo.Context) error {
	page, limit, msg := paging(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client_id"})
	}
	storeID, ok := queryID(c, "store_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store_id"})
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListOrdersInput{
		Page:     page,
		Limit:    limit,
		ClientID: clientID,
		StoreID:  storeID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	o, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) listDetails(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	items, err := h.uc.ListDetails(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req validator.OrderRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) place(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.Place(c.Request().Context(), req.Order, req.Lines)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req validator.OrderRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *OrderHandler) addDetail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req validator.OrderDetailsRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	d, err := h.uc.AddDetail(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *OrderHandler) updateDetail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	detailID, ok := pathID(c, "detail_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid detail_id"})
	}

	var req validator.OrderDetailsRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	d, err := h.uc.UpdateDetail(c.Request().Context(), id, detailID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *OrderHandler) deleteDetail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	detailID, ok := pathID(c, "detail_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid detail_id"})
	}

	if err := h.uc.DeleteDetail(c.Request().Context(), id, detailID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
