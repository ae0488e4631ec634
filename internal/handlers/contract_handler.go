package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeff1984Sor/app-beach/internal/dto"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/middleware"
	uc "github.com/Jeff1984Sor/app-beach/internal/usecase/scheduling"
)

type ContractHandler struct {
	save    *uc.SaveContract
	list    *uc.ListStudentContracts
	reserve *uc.ReserveContractLessons
	loc     *time.Location
}

func NewContractHandler(
	save *uc.SaveContract,
	list *uc.ListStudentContracts,
	reserve *uc.ReserveContractLessons,
	loc *time.Location,
) *ContractHandler {
	return &ContractHandler{save: save, list: list, reserve: reserve, loc: loc}
}

// --------- Requests ---------

type SaveContractRequest struct {
	PlanID          uint     `json:"plano_id" binding:"required"`
	ProfessionalID  uint     `json:"professor_id" binding:"required"`
	UnitID          *uint    `json:"unidade_id"`
	StartDate       string   `json:"data_inicio" binding:"required,date"`
	Weekdays        []string `json:"dias_semana" binding:"required,min=1,dive,weekday"`
	StartTime       string   `json:"hora_inicio" binding:"required,hhmm"`
	DurationMinutes int      `json:"duracao_minutos" binding:"omitempty,min=15,max=480"`
	Price           *float64 `json:"valor" binding:"omitempty,gte=0"`
	Status          string   `json:"status" binding:"omitempty,oneof=ativo inativo encerrado"`
}

type ReserveRequest struct {
	Weekdays        []string `json:"dias_semana" binding:"omitempty,dive,weekday"`
	StartTime       string   `json:"hora_inicio" binding:"omitempty,hhmm"`
	DurationMinutes int      `json:"duracao_minutos" binding:"omitempty,min=15,max=480"`
	ProfessionalID  *uint    `json:"professor_id"`
	UnitID          *uint    `json:"unidade_id"`
}

// --------- Handlers ---------

func (h *ContractHandler) List(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	cs, err := h.list.Execute(c.Request.Context(), studentID)
	if err != nil {
		httperr.Respond(c, err, "contract_list_failed")
		return
	}
	httpresp.List(c, dto.NewContractDTOs(cs))
}

func (h *ContractHandler) Create(c *gin.Context) {
	h.saveContract(c, false)
}

func (h *ContractHandler) Update(c *gin.Context) {
	h.saveContract(c, true)
}

func (h *ContractHandler) saveContract(c *gin.Context, update bool) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var contractID uint
	if update {
		if contractID, ok = uintParam(c, "cid"); !ok {
			return
		}
	}

	var req SaveContractRequest
	if !bindJSON(c, &req) {
		return
	}

	contract, err := h.save.Execute(c.Request.Context(), uc.SaveContractInput{
		StudentID:       studentID,
		ContractID:      contractID,
		PlanID:          req.PlanID,
		ProfessionalID:  req.ProfessionalID,
		UnitID:          req.UnitID,
		StartDate:       req.StartDate,
		Weekdays:        req.Weekdays,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Status:          req.Status,
		UserID:          middleware.CurrentUserID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "contract_save_failed")
		return
	}

	if update {
		httpresp.OK(c, dto.NewContractDTO(*contract))
		return
	}
	httpresp.Created(c, dto.NewContractDTO(*contract))
}

// Reserve answers 201 even when some dates were rejected; they are listed
// in "rejeitadas" with a warning in "aviso".
func (h *ContractHandler) Reserve(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	contractID, ok := uintParam(c, "cid")
	if !ok {
		return
	}

	var req ReserveRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	res, err := h.reserve.Execute(c.Request.Context(), uc.ReserveInput{
		StudentID:       studentID,
		ContractID:      contractID,
		Weekdays:        req.Weekdays,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		ProfessionalID:  req.ProfessionalID,
		UnitID:          req.UnitID,
		UserID:          middleware.CurrentUserID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "reservation_failed")
		return
	}

	httpresp.Created(c, dto.NewReservationDTO(res, h.loc))
}
