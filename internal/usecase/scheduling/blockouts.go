package scheduling

import (
	"context"

	"go.uber.org/zap"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateBlockOutInput struct {
	ProfessionalID *uint
	UnitID         *uint
	DateFrom       string
	DateTo         string
	Weekdays       []string
	StartTime      string
	EndTime        string
	Reason         string

	UserID *uint
}

type CreateBlockOut struct {
	repo  domain.Repository
	audit Auditor
	cal   Calendar
	log   *zap.Logger
}

func NewCreateBlockOut(repo domain.Repository, audit Auditor, cal Calendar, log *zap.Logger) *CreateBlockOut {
	return &CreateBlockOut{repo: repo, audit: audit, cal: cal, log: log}
}

// Execute stores the block-out. Existing lessons are left untouched;
// only later placements see it.
func (uc *CreateBlockOut) Execute(
	ctx context.Context,
	in CreateBlockOutInput,
) (*models.BlockOut, error) {

	from, err := uc.cal.parseDate(in.DateFrom)
	if err != nil {
		return nil, err
	}

	to := from
	if in.DateTo != "" {
		if to, err = uc.cal.parseDate(in.DateTo); err != nil {
			return nil, err
		}
		if to.Before(from) {
			to = from
		}
	}

	start, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(in.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, httperr.Validation("invalid_time_range", "hora_fim deve ser maior que hora_inicio.")
	}

	weekdays, err := domain.ParseWeekdays(in.Weekdays)
	if err != nil {
		return nil, err
	}

	if in.ProfessionalID != nil {
		if _, err := uc.repo.GetProfessional(ctx, *in.ProfessionalID); err != nil {
			return nil, errProfessionalNotFound(err)
		}
	}

	b := &models.BlockOut{
		ProfessionalID: in.ProfessionalID,
		UnitID:         in.UnitID,
		DateFrom:       from,
		DateTo:         to,
		WeekdayMask:    int(weekdays),
		StartTime:      start.String(),
		EndTime:        end.String(),
		Reason:         in.Reason,
	}

	if err := uc.repo.CreateBlockOut(ctx, b); err != nil {
		return nil, err
	}

	uc.log.Info("block-out created",
		zap.Uint("blockout_id", b.ID),
		zap.String("from", from.Format("2006-01-02")),
		zap.String("to", to.Format("2006-01-02")),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "blockout_created",
		Entity:   "block_out",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"profissional_id": in.ProfessionalID,
			"dias_semana":     weekdays.Tokens(),
			"hora_inicio":     b.StartTime,
			"hora_fim":        b.EndTime,
		},
	})

	return b, nil
}

// ======================================================
// LIST
// ======================================================

type ListBlockOutsInput struct {
	DateFrom       string
	DateTo         string
	ProfessionalID *uint
}

type ListBlockOuts struct {
	repo domain.Repository
	cal  Calendar
}

func NewListBlockOuts(repo domain.Repository, cal Calendar) *ListBlockOuts {
	return &ListBlockOuts{repo: repo, cal: cal}
}

// Execute defaults to the next twelve months starting today.
func (uc *ListBlockOuts) Execute(
	ctx context.Context,
	in ListBlockOutsInput,
) ([]models.BlockOut, error) {

	from := uc.cal.today()
	if in.DateFrom != "" {
		d, err := uc.cal.parseDate(in.DateFrom)
		if err != nil {
			return nil, err
		}
		from = d
	}

	to := domain.AddMonths(from, 12)
	if in.DateTo != "" {
		d, err := uc.cal.parseDate(in.DateTo)
		if err != nil {
			return nil, err
		}
		to = d
	}
	if to.Before(from) {
		return nil, httperr.Validation("invalid_period", "data_fim deve ser maior ou igual a data_inicio.")
	}

	bos, err := uc.repo.ListBlockOuts(ctx, in.ProfessionalID, from, to)
	if err != nil {
		return nil, err
	}
	if bos == nil {
		bos = []models.BlockOut{}
	}
	return bos, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteBlockOut struct {
	repo  domain.Repository
	audit Auditor
}

func NewDeleteBlockOut(repo domain.Repository, audit Auditor) *DeleteBlockOut {
	return &DeleteBlockOut{repo: repo, audit: audit}
}

// Execute removes only the block-out row; lessons are never touched.
func (uc *DeleteBlockOut) Execute(ctx context.Context, id uint, userID *uint) error {
	if err := uc.repo.DeleteBlockOut(ctx, id); err != nil {
		return notFound(err, "blockout_not_found", "Bloqueio não encontrado.")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "blockout_deleted",
		Entity:   "block_out",
		EntityID: &id,
	})
	return nil
}
