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

// ======================================================
// HANDLER
// ======================================================

type LessonHandler struct {
	list         *uc.ListStudentLessons
	reschedule   *uc.RescheduleLesson
	changeStatus *uc.ChangeLessonStatus
	availability *uc.GetAvulsaAvailability
	createAvulsa *uc.CreateAvulsaLesson
	loc          *time.Location
}

func NewLessonHandler(
	list *uc.ListStudentLessons,
	reschedule *uc.RescheduleLesson,
	changeStatus *uc.ChangeLessonStatus,
	availability *uc.GetAvulsaAvailability,
	createAvulsa *uc.CreateAvulsaLesson,
	loc *time.Location,
) *LessonHandler {
	return &LessonHandler{
		list:         list,
		reschedule:   reschedule,
		changeStatus: changeStatus,
		availability: availability,
		createAvulsa: createAvulsa,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RescheduleRequest struct {
	Date           string `json:"data" binding:"required,date"`
	Time           string `json:"hora" binding:"required,hhmm"`
	ProfessionalID *uint  `json:"professor_id"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityQuery struct {
	Date            string `form:"data" binding:"required,date"`
	ProfessionalID  uint   `form:"professor_id" binding:"required"`
	DurationMinutes *int   `form:"duracao_minutos" binding:"omitempty,min=15,max=480"`
}

type CreateAvulsaRequest struct {
	ProfessionalID  uint    `json:"professor_id" binding:"required"`
	UnitID          *uint   `json:"unidade_id"`
	Date            string  `json:"data" binding:"required,date"`
	Time            string  `json:"hora" binding:"required,hhmm"`
	DurationMinutes int     `json:"duracao_minutos" binding:"omitempty,min=15,max=480"`
	Price           float64 `json:"valor" binding:"gte=0"`
}

// ======================================================
// LIST
// ======================================================

func (h *LessonHandler) List(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	lessons, err := h.list.Execute(c.Request.Context(), studentID)
	if err != nil {
		httperr.Respond(c, err, "lesson_list_failed")
		return
	}
	httpresp.List(c, dto.NewLessonDTOs(lessons, h.loc))
}

// ======================================================
// RESCHEDULE / STATUS
// ======================================================

func (h *LessonHandler) Reschedule(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	lessonID, ok := uintParam(c, "aid")
	if !ok {
		return
	}

	var req RescheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	lesson, err := h.reschedule.Execute(c.Request.Context(), uc.RescheduleInput{
		StudentID:      studentID,
		LessonID:       lessonID,
		Date:           req.Date,
		Time:           req.Time,
		ProfessionalID: req.ProfessionalID,
		UserID:         middleware.CurrentUserID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "lesson_reschedule_failed")
		return
	}

	httpresp.OK(c, dto.NewLessonDTO(*lesson, h.loc))
}

func (h *LessonHandler) ChangeStatus(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	lessonID, ok := uintParam(c, "aid")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	lesson, err := h.changeStatus.Execute(c.Request.Context(), uc.ChangeStatusInput{
		StudentID: studentID,
		LessonID:  lessonID,
		Status:    req.Status,
		UserID:    middleware.CurrentUserID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "lesson_status_failed")
		return
	}

	httpresp.OK(c, dto.NewLessonDTO(*lesson, h.loc))
}

// ======================================================
// AULAS AVULSAS
// ======================================================

func (h *LessonHandler) Availability(c *gin.Context) {
	if _, ok := uintParam(c, "id"); !ok {
		return
	}

	var q AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}

	minutes := 60
	if q.DurationMinutes != nil {
		minutes = *q.DurationMinutes
	}

	slots, err := h.availability.Execute(c.Request.Context(), uc.AvailabilityInput{
		Date:            q.Date,
		ProfessionalID:  q.ProfessionalID,
		DurationMinutes: minutes,
	})
	if err != nil {
		httperr.Respond(c, err, "availability_failed")
		return
	}

	httpresp.OK(c, dto.NewAvailabilityDTO(q.Date, q.ProfessionalID, minutes, slots))
}

func (h *LessonHandler) CreateAvulsa(c *gin.Context) {
	studentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req CreateAvulsaRequest
	if !bindJSON(c, &req) {
		return
	}

	lesson, err := h.createAvulsa.Execute(c.Request.Context(), uc.CreateAvulsaInput{
		StudentID:       studentID,
		ProfessionalID:  req.ProfessionalID,
		UnitID:          req.UnitID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		UserID:          middleware.CurrentUserID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "lesson_create_failed")
		return
	}

	httpresp.Created(c, dto.NewLessonDTO(*lesson, h.loc))
}
