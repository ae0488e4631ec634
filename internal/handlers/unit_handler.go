package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type UnitHandler struct {
	db *gorm.DB
}

func NewUnitHandler(db *gorm.DB) *UnitHandler {
	return &UnitHandler{db: db}
}

type CreateUnitRequest struct {
	Name    string `json:"nome" binding:"required,max=120"`
	Address string `json:"endereco" binding:"max=255"`
}

func (h *UnitHandler) List(c *gin.Context) {
	var units []models.Unit
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&units).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_units")
		return
	}
	httpresp.List(c, units)
}

func (h *UnitHandler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	unit := models.Unit{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&unit).Error; err != nil {
		httperr.Respond(c, err, "failed_to_create_unit")
		return
	}
	httpresp.Created(c, unit)
}
