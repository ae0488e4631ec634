package scheduling

import (
	"context"
	"fmt"
	"time"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
)

// calendarSnapshot is what the guard and the resolver see for one
// professional over [from, to).
type calendarSnapshot struct {
	lessons   []domain.Occurrence
	blockouts []domain.BlockOut
}

func loadSnapshot(
	ctx context.Context,
	repo domain.Repository,
	loc *time.Location,
	professionalID uint,
	from time.Time,
	to time.Time,
) (calendarSnapshot, error) {

	lessons, err := repo.ListLessonsForPeriod(ctx, &professionalID, from, to)
	if err != nil {
		return calendarSnapshot{}, fmt.Errorf("snapshot lessons: %w", err)
	}

	// block-out ranges are inclusive dates
	bos, err := repo.ListBlockOuts(ctx, &professionalID, from, to.Add(-time.Nanosecond))
	if err != nil {
		return calendarSnapshot{}, fmt.Errorf("snapshot block-outs: %w", err)
	}

	return calendarSnapshot{
		lessons:   domain.OccurrencesFromLessons(lessons),
		blockouts: domain.BlockOutsFromModels(bos, loc),
	}, nil
}
