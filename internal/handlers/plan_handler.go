package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type PlanHandler struct {
	db *gorm.DB
}

func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

// --------- Requests ---------

type CreatePlanRequest struct {
	Name        string  `json:"nome" binding:"required,max=120"`
	Price       float64 `json:"valor" binding:"gte=0"`
	Recurrence  string  `json:"recorrencia" binding:"required"`
	WeeklyQuota int     `json:"qtd_aulas_semanais" binding:"required,min=1,max=7"`
}

type UpdatePlanRequest struct {
	Name        *string  `json:"nome,omitempty" binding:"omitempty,max=120"`
	Price       *float64 `json:"valor,omitempty" binding:"omitempty,gte=0"`
	Recurrence  *string  `json:"recorrencia,omitempty"`
	WeeklyQuota *int     `json:"qtd_aulas_semanais,omitempty" binding:"omitempty,min=1,max=7"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=ativo inativo"`
}

// --------- Handlers ---------

func (h *PlanHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	if status := strings.ToLower(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("status = ?", status)
	}

	var plans []models.Plan
	if err := q.Order("id ASC").Find(&plans).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_plans")
		return
	}
	httpresp.List(c, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := domain.ParseRecurrence(req.Recurrence)
	if err != nil {
		httperr.Respond(c, err, "invalid_recurrence")
		return
	}

	plan := models.Plan{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Recurrence:  string(rec),
		WeeklyQuota: req.WeeklyQuota,
		Status:      "ativo",
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&plan).Error; err != nil {
		httperr.Respond(c, err, "failed_to_create_plan")
		return
	}
	httpresp.Created(c, plan)
}

// Update never touches contracts already signed under the plan; they keep
// their own copy of recurrence and price.
func (h *PlanHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if !bindJSON(c, &req) {
		return
	}

	var plan models.Plan
	if err := h.db.WithContext(c.Request.Context()).First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
			return
		}
		httperr.Respond(c, err, "failed_to_update_plan")
		return
	}

	if req.Name != nil {
		plan.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.Recurrence != nil {
		rec, err := domain.ParseRecurrence(*req.Recurrence)
		if err != nil {
			httperr.Respond(c, err, "invalid_recurrence")
			return
		}
		plan.Recurrence = string(rec)
	}
	if req.WeeklyQuota != nil {
		plan.WeeklyQuota = *req.WeeklyQuota
	}
	if req.Status != nil {
		plan.Status = *req.Status
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&plan).Error; err != nil {
		httperr.Respond(c, err, "failed_to_update_plan")
		return
	}
	httpresp.OK(c, plan)
}

// Delete refuses plans referenced by contracts (409 in_use).
func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Plan{}, id)
	if res.Error != nil {
		httperr.Respond(c, res.Error, "failed_to_delete_plan")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
		return
	}
	c.Status(http.StatusNoContent)
}
