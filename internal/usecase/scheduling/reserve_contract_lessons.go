package scheduling

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

// ReserveInput overrides, when set, the contract's own schedule for this
// reservation only. The contract row is never modified.
type ReserveInput struct {
	StudentID  uint
	ContractID uint

	Weekdays        []string
	StartTime       string
	DurationMinutes int
	ProfessionalID  *uint
	UnitID          *uint

	UserID *uint
}

type RejectedSlot struct {
	Start  time.Time
	End    time.Time
	Reason domain.Reason
}

type Reservation struct {
	Contract *models.Contract
	Accepted []models.Lesson
	Rejected []RejectedSlot
	Warning  string
}

// ======================================================
// USE CASE
// ======================================================

type ReserveContractLessons struct {
	repo  domain.Repository
	audit Auditor
	cal   Calendar
	log   *zap.Logger
}

func NewReserveContractLessons(
	repo domain.Repository,
	audit Auditor,
	cal Calendar,
	log *zap.Logger,
) *ReserveContractLessons {
	return &ReserveContractLessons{repo: repo, audit: audit, cal: cal, log: log}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReserveContractLessons) Execute(
	ctx context.Context,
	in ReserveInput,
) (*Reservation, error) {

	// --------------------------------------------------
	// 1️⃣ Contrato do aluno + plano
	// --------------------------------------------------
	contract, err := uc.repo.GetContractForStudent(ctx, in.ContractID, in.StudentID)
	if err != nil {
		return nil, errContractNotFound(err)
	}

	plan, err := uc.repo.GetPlan(ctx, contract.PlanID)
	if err != nil {
		return nil, errPlanNotFound(err)
	}

	// --------------------------------------------------
	// 2️⃣ Agenda efetiva (contrato + overrides)
	// --------------------------------------------------
	weekdays := domain.WeekdaySet(contract.WeekdayMask)
	if len(in.Weekdays) > 0 {
		if weekdays, err = domain.ParseWeekdays(in.Weekdays); err != nil {
			return nil, err
		}
	}
	if err := checkQuota(weekdays, plan); err != nil {
		return nil, err
	}

	hm := contract.StartTime
	if in.StartTime != "" {
		hm = in.StartTime
	}
	at, err := domain.ParseClock(hm)
	if err != nil {
		return nil, err
	}

	minutes := contract.DurationMinutes
	if in.DurationMinutes > 0 {
		minutes = in.DurationMinutes
	}
	duration := durationOf(minutes)

	professionalID := contract.ProfessionalID
	if in.ProfessionalID != nil {
		professionalID = *in.ProfessionalID
	}

	unitID := contract.UnitID
	if in.UnitID != nil {
		unitID = in.UnitID
	}

	from := domain.CivilDate(contract.StartDate, uc.cal.Loc)
	to := domain.CivilDate(contract.EndDate, uc.cal.Loc)

	slots := domain.ExpandRange(from, to, weekdays, at, duration)
	price := lessonPrice(contract.Price, len(slots))

	res := &Reservation{
		Contract: contract,
		Accepted: []models.Lesson{},
		Rejected: []RejectedSlot{},
	}

	// --------------------------------------------------
	// 3️⃣ Transação com lock da agenda do professor
	// --------------------------------------------------
	guard := domain.NewGuard(uc.cal.Window)

	// an override moves the contract's pending lessons off the contract
	// professional's calendar, so both calendars are held
	calendars := []uint{contract.ProfessionalID, professionalID}

	err = uc.repo.WithCalendarLock(ctx, calendars, func(tx domain.Repository) error {
		// regenerating: the contract's own pending lessons are replaced,
		// lessons moved by hand stay where they are
		removed, err := tx.DeleteScheduledContractLessons(ctx, contract.ID, from)
		if err != nil {
			return err
		}
		if removed > 0 {
			uc.log.Info("contract lessons regenerated",
				zap.Uint("contract_id", contract.ID),
				zap.Int64("removed", removed),
			)
		}

		snap, err := loadSnapshot(ctx, tx, uc.cal.Loc, professionalID, from, to.AddDate(0, 0, 1))
		if err != nil {
			return err
		}

		placement := guard.Place(domain.Candidates(professionalID, slots), snap.lessons, snap.blockouts)

		for _, c := range placement.Accepted {
			res.Accepted = append(res.Accepted, models.Lesson{
				StudentID:      &contract.StudentID,
				ContractID:     &contract.ID,
				ProfessionalID: professionalID,
				UnitID:         unitID,
				StartTime:      c.Start,
				EndTime:        c.End,
				Status:         string(domain.InitialStatus()),
				Price:          price,
			})
		}
		for _, r := range placement.Rejected {
			res.Rejected = append(res.Rejected, RejectedSlot{
				Start:  r.Candidate.Start,
				End:    r.Candidate.End,
				Reason: r.Reason,
			})
		}

		return tx.CreateLessons(ctx, res.Accepted)
	})
	if err != nil {
		return nil, errProfessionalNotFound(err)
	}

	// --------------------------------------------------
	// 4️⃣ Aviso / log / auditoria
	// --------------------------------------------------
	switch {
	case len(slots) == 0:
		res.Warning = "Nenhuma data do período do contrato cai nos dias escolhidos."
	case len(res.Rejected) > 0:
		res.Warning = fmt.Sprintf(
			"%d de %d aulas não puderam ser reservadas por conflito de horário.",
			len(res.Rejected), len(slots),
		)
	}

	uc.log.Info("contract lessons reserved",
		zap.Uint("contract_id", contract.ID),
		zap.Uint("professional_id", professionalID),
		zap.Int("candidates", len(slots)),
		zap.Int("accepted", len(res.Accepted)),
		zap.Int("rejected", len(res.Rejected)),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "contract_lessons_reserved",
		Entity:   "contract",
		EntityID: &contract.ID,
		Metadata: map[string]any{
			"professor_id": professionalID,
			"aceitas":      len(res.Accepted),
			"rejeitadas":   len(res.Rejected),
		},
	})

	return res, nil
}

// lessonPrice spreads the contract value over its lessons, in cents.
func lessonPrice(total float64, lessons int) float64 {
	if lessons == 0 || total <= 0 {
		return 0
	}
	return math.Round(total/float64(lessons)*100) / 100
}
