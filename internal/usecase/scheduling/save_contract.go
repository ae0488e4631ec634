package scheduling

import (
	"context"
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaveContractInput struct {
	StudentID  uint
	ContractID uint // 0 creates

	PlanID          uint
	ProfessionalID  uint
	UnitID          *uint
	StartDate       string
	Weekdays        []string
	StartTime       string
	DurationMinutes int
	Price           *float64
	Status          string

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type SaveContract struct {
	repo  domain.Repository
	audit Auditor
	cal   Calendar
}

func NewSaveContract(repo domain.Repository, audit Auditor, cal Calendar) *SaveContract {
	return &SaveContract{repo: repo, audit: audit, cal: cal}
}

// checkQuota enforces |weekdays| <= plan weekly quota.
func checkQuota(weekdays domain.WeekdaySet, plan *models.Plan) error {
	if weekdays.Empty() {
		return httperr.Validation("weekdays_required", "Informe ao menos um dia da semana.")
	}
	if plan.WeeklyQuota > 0 && weekdays.Len() > plan.WeeklyQuota {
		return httperr.Validationf(
			"weekly_quota_exceeded",
			"O plano %s permite %d aula(s) por semana; foram escolhidos %d dias.",
			plan.Name, plan.WeeklyQuota, weekdays.Len(),
		)
	}
	return nil
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveContract) Execute(
	ctx context.Context,
	in SaveContractInput,
) (*models.Contract, error) {

	// --------------------------------------------------
	// 1️⃣ Aluno / contrato existente
	// --------------------------------------------------
	if _, err := uc.repo.GetStudent(ctx, in.StudentID); err != nil {
		return nil, errStudentNotFound(err)
	}

	contract := &models.Contract{StudentID: in.StudentID, Status: "ativo"}
	if in.ContractID != 0 {
		existing, err := uc.repo.GetContractForStudent(ctx, in.ContractID, in.StudentID)
		if err != nil {
			return nil, errContractNotFound(err)
		}
		contract = existing
	}

	// --------------------------------------------------
	// 2️⃣ Plano + quota semanal
	// --------------------------------------------------
	plan, err := uc.repo.GetPlan(ctx, in.PlanID)
	if err != nil {
		return nil, errPlanNotFound(err)
	}

	weekdays, err := domain.ParseWeekdays(in.Weekdays)
	if err != nil {
		return nil, err
	}
	if err := checkQuota(weekdays, plan); err != nil {
		return nil, err
	}

	recurrence, err := domain.ParseRecurrence(plan.Recurrence)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Professor
	// --------------------------------------------------
	if _, err := uc.repo.GetProfessional(ctx, in.ProfessionalID); err != nil {
		return nil, errProfessionalNotFound(err)
	}

	// --------------------------------------------------
	// 4️⃣ Datas e horário
	// --------------------------------------------------
	startDate, err := uc.cal.parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}

	startAt, err := uc.cal.parseStart(in.StartDate, in.StartTime)
	if err != nil {
		return nil, err
	}

	duration := durationOf(in.DurationMinutes)
	if !uc.cal.Window.Contains(domain.NewInterval(startAt, duration)) {
		return nil, domain.ReasonOutsideHours.Err()
	}

	// --------------------------------------------------
	// 5️⃣ Persistência
	// --------------------------------------------------
	contract.PlanID = plan.ID
	contract.ProfessionalID = in.ProfessionalID
	contract.UnitID = in.UnitID
	contract.StartDate = startDate
	contract.EndDate = recurrence.EndDate(startDate)
	contract.Recurrence = string(recurrence)
	contract.WeekdayMask = int(weekdays)
	contract.StartTime = domain.ClockOf(startAt).String()
	contract.DurationMinutes = int(duration / time.Minute)
	contract.Price = plan.Price
	if in.Price != nil {
		contract.Price = *in.Price
	}
	if in.Status != "" {
		contract.Status = in.Status
	}

	action := "contract_updated"
	if contract.ID == 0 {
		action = "contract_created"
		err = uc.repo.CreateContract(ctx, contract)
	} else {
		err = uc.repo.UpdateContract(ctx, contract)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   action,
		Entity:   "contract",
		EntityID: &contract.ID,
		Metadata: map[string]any{
			"plano_id":    plan.ID,
			"dias_semana": weekdays.Tokens(),
			"data_fim":    contract.EndDate.Format("2006-01-02"),
		},
	})

	return contract, nil
}

// ======================================================
// LIST
// ======================================================

type ListStudentContracts struct {
	repo domain.Repository
}

func NewListStudentContracts(repo domain.Repository) *ListStudentContracts {
	return &ListStudentContracts{repo: repo}
}

func (uc *ListStudentContracts) Execute(ctx context.Context, studentID uint) ([]models.Contract, error) {
	if _, err := uc.repo.GetStudent(ctx, studentID); err != nil {
		return nil, errStudentNotFound(err)
	}

	cs, err := uc.repo.ListContractsForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		cs = []models.Contract{}
	}
	return cs, nil
}
