package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeff1984Sor/app-beach/internal/dto"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/middleware"
	uc "github.com/Jeff1984Sor/app-beach/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	listPeriod        *uc.ListAgendaPeriod
	listProfessionals *uc.ListProfessionals
	createBlockOut    *uc.CreateBlockOut
	listBlockOuts     *uc.ListBlockOuts
	deleteBlockOut    *uc.DeleteBlockOut
	loc               *time.Location
}

func NewAgendaHandler(
	listPeriod *uc.ListAgendaPeriod,
	listProfessionals *uc.ListProfessionals,
	createBlockOut *uc.CreateBlockOut,
	listBlockOuts *uc.ListBlockOuts,
	deleteBlockOut *uc.DeleteBlockOut,
	loc *time.Location,
) *AgendaHandler {
	return &AgendaHandler{
		listPeriod:        listPeriod,
		listProfessionals: listProfessionals,
		createBlockOut:    createBlockOut,
		listBlockOuts:     listBlockOuts,
		deleteBlockOut:    deleteBlockOut,
		loc:               loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PeriodQuery struct {
	DateFrom string `form:"data_inicio" binding:"required,date"`
	DateTo   string `form:"data_fim" binding:"required,date"`
}

type BlockOutQuery struct {
	DateFrom string `form:"data_inicio" binding:"omitempty,date"`
	DateTo   string `form:"data_fim" binding:"omitempty,date"`
}

type CreateBlockOutRequest struct {
	ProfessionalID *uint    `json:"profissional_id"`
	UnitID         *uint    `json:"unidade_id"`
	DateFrom       string   `json:"data_inicio" binding:"required,date"`
	DateTo         string   `json:"data_fim" binding:"omitempty,date"`
	Weekdays       []string `json:"dias_semana" binding:"omitempty,dive,weekday"`
	StartTime      string   `json:"hora_inicio" binding:"required,hhmm"`
	EndTime        string   `json:"hora_fim" binding:"required,hhmm"`
	Reason         string   `json:"motivo" binding:"max=255"`
}

// ======================================================
// AGENDA
// ======================================================

func (h *AgendaHandler) Period(c *gin.Context) {
	var q PeriodQuery
	if !bindQuery(c, &q) {
		return
	}
	professionalID, ok := optionalUintQuery(c, "profissional_id")
	if !ok {
		return
	}

	period, err := h.listPeriod.Execute(c.Request.Context(), uc.AgendaPeriodInput{
		DateFrom:       q.DateFrom,
		DateTo:         q.DateTo,
		ProfessionalID: professionalID,
	})
	if err != nil {
		httperr.Respond(c, err, "agenda_list_failed")
		return
	}

	httpresp.OK(c, dto.AgendaPeriodDTO{
		DateFrom:  q.DateFrom,
		DateTo:    q.DateTo,
		Lessons:   dto.NewLessonDTOs(period.Lessons, h.loc),
		BlockOuts: dto.NewBlockOutDTOs(period.BlockOuts),
	})
}

func (h *AgendaHandler) Professionals(c *gin.Context) {
	pros, err := h.listProfessionals.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "professionals_list_failed")
		return
	}
	httpresp.List(c, dto.NewProfessionalDTOs(pros))
}

// ======================================================
// BLOCK-OUTS
// ======================================================

func (h *AgendaHandler) ListBlockOuts(c *gin.Context) {
	var q BlockOutQuery
	if !bindQuery(c, &q) {
		return
	}
	professionalID, ok := optionalUintQuery(c, "profissional_id")
	if !ok {
		return
	}

	bos, err := h.listBlockOuts.Execute(c.Request.Context(), uc.ListBlockOutsInput{
		DateFrom:       q.DateFrom,
		DateTo:         q.DateTo,
		ProfessionalID: professionalID,
	})
	if err != nil {
		httperr.Respond(c, err, "blockout_list_failed")
		return
	}
	httpresp.List(c, dto.NewBlockOutDTOs(bos))
}

func (h *AgendaHandler) CreateBlockOut(c *gin.Context) {
	var req CreateBlockOutRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.createBlockOut.Execute(c.Request.Context(), uc.CreateBlockOutInput{
		ProfessionalID: req.ProfessionalID,
		UnitID:         req.UnitID,
		DateFrom:       req.DateFrom,
		DateTo:         req.DateTo,
		Weekdays:       req.Weekdays,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Reason:         req.Reason,
		UserID:         middleware.CurrentUserID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "blockout_create_failed")
		return
	}

	httpresp.Created(c, dto.NewBlockOutDTO(*b))
}

func (h *AgendaHandler) DeleteBlockOut(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteBlockOut.Execute(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		httperr.Respond(c, err, "blockout_delete_failed")
		return
	}

	c.Status(http.StatusNoContent)
}
