package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jeff1984Sor/app-beach/internal/models"
)

const writeTimeout = 5 * time.Second

// Logger persists events into audit_logs. It runs on the dispatcher's
// worker, outside any request context.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ev Event) error {
	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
	}

	if ev.Metadata != nil {
		b, err := json.Marshal(ev.Metadata)
		if err != nil {
			return fmt.Errorf("audit metadata %s: %w", ev.Action, err)
		}
		row.Metadata = string(b)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return l.db.WithContext(ctx).Create(&row).Error
}
