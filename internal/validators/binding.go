package validators

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
)

// Register installs the calendar tags on gin's validator:
//
//	date     YYYY-MM-DD
//	hhmm     HH:MM
//	weekday  Seg Ter Qua Qui Sex Sab Dom (use "dive,weekday" on slices)
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validators: gin engine is not validator/v10")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		"date":    isDate,
		"hhmm":    isClock,
		"weekday": isWeekday,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func isClock(fl validator.FieldLevel) bool {
	_, err := scheduling.ParseClock(fl.Field().String())
	return err == nil
}

func isWeekday(fl validator.FieldLevel) bool {
	_, ok := scheduling.ParseWeekday(fl.Field().String())
	return ok
}

var tagMessages = map[string]string{
	"required": "é obrigatório",
	"date":     "deve estar no formato AAAA-MM-DD",
	"hhmm":     "deve estar no formato HH:MM",
	"weekday":  "deve ser Seg, Ter, Qua, Qui, Sex, Sab ou Dom",
	"email":    "deve ser um e-mail válido",
	"min":      "está abaixo do mínimo",
	"max":      "está acima do máximo",
	"oneof":    "tem valor não permitido",
	"gt":       "deve ser maior que zero",
	"gte":      "está abaixo do mínimo",
}

// Describe turns binding errors into a single Portuguese sentence.
func Describe(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Requisição inválida."
	}

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "é inválido"
		}
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field(), msg))
	}
	return strings.Join(parts, "; ") + "."
}
