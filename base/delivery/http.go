package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// errStatus is checked in order with errors.Is
var errStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{query.ErrNotFound, http.StatusNotFound},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	// a filter combination no index serves
	{query.ErrCollScan, http.StatusBadRequest},
}

// StatusOf returns the status for err, fallback when err is not a known core error
func StatusOf(err error, fallback int) int {
	for _, es := range errStatus {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return fallback
}

// MakeJsonResp wraps data in a JsonResponse. An error as data is sent as its message.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	switch {
	case status >= http.StatusBadRequest:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	default:
		return c.JSON(status, data)
	}
}
