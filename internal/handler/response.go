package handler

import (
	"net/http"
	"strconv"

	"retail/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// 入力値の検証エラー（422）
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := usecase.AsValidationFailed(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: ve.Fields})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// パスの:idなどを正の整数として取り出す
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// page / limit（未指定なら0でusecase側の既定値）
func paging(c echo.Context) (page int, limit int, msg string) {
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, "invalid page"
		}
		page = p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, "invalid limit"
		}
		limit = l
	}
	return page, limit, ""
}

// 任意のクエリID（client_id / store_id）
func queryID(c echo.Context, name string) (*int64, bool) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}
