// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pedelogo/internal/modules/commission"
	"pedelogo/internal/modules/courierpay"
	"pedelogo/internal/modules/route"
	"pedelogo/internal/modules/settlement"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeSettlementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, settlement.ErrInvalidInput),
		errors.Is(err, route.ErrInvalidInput),
		errors.Is(err, commission.ErrInvalidInput),
		errors.Is(err, courierpay.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, settlement.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, settlement.ErrAlreadySettled):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
