package validators

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Data   string   `validate:"required,date"`
	Hora   string   `validate:"required,hhmm"`
	Dias   []string `validate:"required,min=1,dive,weekday"`
	Motivo string
}

func newValidate(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestCalendarTags(t *testing.T) {
	v := newValidate(t)

	ok := sample{Data: "2026-02-02", Hora: "18:00", Dias: []string{"Seg", "qua", "Sáb"}}
	assert.NoError(t, v.Struct(ok))

	bad := sample{Data: "02/02/2026", Hora: "18h", Dias: []string{"Seg", "Foo"}}
	err := v.Struct(bad)
	require.Error(t, err)

	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve, 3)

	msg := Describe(err)
	assert.Contains(t, msg, "Data deve estar no formato AAAA-MM-DD")
	assert.Contains(t, msg, "Hora deve estar no formato HH:MM")
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "Requisição inválida.", Describe(errors.New("EOF")))
}
