package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err, "fallback")

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond_BusinessKinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{Validation("invalid_date", "Data inválida."), http.StatusBadRequest, "invalid_date"},
		{Conflict("overlaps_existing_lesson", "x"), http.StatusConflict, "overlaps_existing_lesson"},
		{NotFoundErr("lesson_not_found", "x"), http.StatusNotFound, "lesson_not_found"},
		{fmt.Errorf("wrapped: %w", Conflict("overlaps_blockout", "x")), http.StatusConflict, "overlaps_blockout"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, body := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRespond_PostgresErrors(t *testing.T) {
	status, body := respond(t, fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"}))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "time_conflict", body.Code)

	status, body = respond(t, &pgconn.PgError{Code: "23503"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "in_use", body.Code)
}

func TestRespond_Fallbacks(t *testing.T) {
	status, body := respond(t, gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", body.Code)

	status, body = respond(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "fallback", body.Code)
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("ctx: %w", Validation("invalid_status", ""))
	assert.True(t, IsBusiness(err, "invalid_status"))
	assert.False(t, IsBusiness(err, "other"))
	assert.False(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
}
