package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SLOT_STEP_MINUTES", "")
	t.Setenv("OPERATING_OPEN", "")
	t.Setenv("OPERATING_CLOSE", "")
	t.Setenv("SCHOOL_TIMEZONE", "")

	cfg := Load()

	w, err := cfg.Window()
	require.NoError(t, err)
	assert.Equal(t, "07:00", w.Open.String())
	assert.Equal(t, "21:00", w.Close.String())
	assert.Equal(t, 30*time.Minute, w.Step)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location().String())
}

func TestWindow_Invalid(t *testing.T) {
	t.Setenv("OPERATING_OPEN", "20:00")
	t.Setenv("OPERATING_CLOSE", "08:00")

	_, err := Load().Window()
	assert.Error(t, err)
}

func TestTwilioEnabled(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_WHATSAPP_FROM", "whatsapp:+5511999999999")
	assert.False(t, Load().TwilioEnabled())

	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	assert.True(t, Load().TwilioEnabled())
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.example.com ,,https://admin.example.com")
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, Load().CORSOrigins)

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Empty(t, Load().CORSOrigins)
}
