package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/validators"
)

// uintParam reads a positive path parameter, answering 400 otherwise.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido: "+name+".")
		return 0, false
	}
	return uint(v), true
}

// optionalUintQuery returns nil when the query parameter is absent.
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name+".")
		return nil, false
	}
	id := uint(v)
	return &id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.Describe(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.Describe(err))
		return false
	}
	return true
}
