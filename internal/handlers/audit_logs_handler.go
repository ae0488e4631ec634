package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/models"
	"github.com/Jeff1984Sor/app-beach/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, loc: loc}
}

type AuditLogsQuery struct {
	Action   string `form:"acao"`
	Entity   string `form:"entidade"`
	DateFrom string `form:"data_inicio" binding:"omitempty,date"`
	DateTo   string `form:"data_fim" binding:"omitempty,date"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var f AuditLogsQuery
	if !bindQuery(c, &f) {
		return
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}

	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}

	// dates were validated by binding
	if f.DateFrom != "" {
		from, _ := timezone.ParseDate(f.DateFrom, h.loc)
		q = q.Where("created_at >= ?", from)
	}

	if f.DateTo != "" {
		to, _ := timezone.ParseDate(f.DateTo, h.loc)
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err, "audit_count_failed")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {

		httperr.Respond(c, err, "audit_list_failed")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
