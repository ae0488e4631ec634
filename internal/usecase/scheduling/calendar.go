package scheduling

import (
	"errors"
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/timezone"
)

// Auditor is satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Calendar carries the school-wide calendar settings.
type Calendar struct {
	Window domain.OperatingWindow
	Loc    *time.Location
	Now    func() time.Time
}

func NewCalendar(w domain.OperatingWindow, loc *time.Location) Calendar {
	return Calendar{Window: w, Loc: loc, Now: time.Now}
}

func (c Calendar) today() time.Time {
	return domain.DateOf(c.Now().In(c.Loc))
}

func (c Calendar) parseDate(s string) (time.Time, error) {
	d, err := timezone.ParseDate(s, c.Loc)
	if err != nil {
		return time.Time{}, httperr.Validationf("invalid_date", "Data inválida (%q). Use AAAA-MM-DD.", s)
	}
	return d, nil
}

// parseStart combines date and HH:MM and requires the step grid.
func (c Calendar) parseStart(date, hm string) (time.Time, error) {
	d, err := c.parseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := domain.ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	if !clock.OnGrid(c.Window.Step) {
		return time.Time{}, httperr.Validationf(
			"off_grid_time",
			"Horário deve ser múltiplo de %d minutos.", int(c.Window.Step/time.Minute),
		)
	}
	return clock.On(d), nil
}

func durationOf(minutes int) time.Duration {
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

func notFound(err error, code, detail string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFoundErr(code, detail)
	}
	return err
}

func errStudentNotFound(err error) error {
	return notFound(err, "student_not_found", "Aluno não encontrado.")
}

func errProfessionalNotFound(err error) error {
	return notFound(err, "professional_not_found", "Professor não encontrado.")
}

func errLessonNotFound(err error) error {
	return notFound(err, "lesson_not_found", "Aula não encontrada.")
}

func errContractNotFound(err error) error {
	return notFound(err, "contract_not_found", "Contrato não encontrado.")
}

func errPlanNotFound(err error) error {
	return notFound(err, "plan_not_found", "Plano não encontrado.")
}
