package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
)

// WorkingHoursHandler exposes the school's operating window so clients can
// build their time pickers on the same grid the server validates against.
type WorkingHoursHandler struct {
	window domain.OperatingWindow
	loc    *time.Location
}

func NewWorkingHoursHandler(window domain.OperatingWindow, loc *time.Location) *WorkingHoursHandler {
	return &WorkingHoursHandler{window: window, loc: loc}
}

type WorkingHoursResponse struct {
	Open        string `json:"abertura"`
	Close       string `json:"fechamento"`
	StepMinutes int    `json:"passo_minutos"`
	Timezone    string `json:"fuso_horario"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	httpresp.OK(c, WorkingHoursResponse{
		Open:        h.window.Open.String(),
		Close:       h.window.Close.String(),
		StepMinutes: int(h.window.Step / time.Minute),
		Timezone:    h.loc.String(),
	})
}
