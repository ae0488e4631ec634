package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code   string `json:"error_code"`
	Kind   Kind   `json:"kind,omitempty"`
	Detail string `json:"detail"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:   code,
		Detail: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, HTTPError{Code: code, Kind: KindValidation, Detail: message})
}

func NotFound(c *gin.Context, code, message string) {
	c.JSON(http.StatusNotFound, HTTPError{Code: code, Kind: KindNotFound, Detail: message})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusFor maps a business error kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Respond writes err as JSON. Business errors keep their code and detail,
// anything else becomes a 500 with the given fallback code.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if be, ok := AsBusiness(err); ok {
		c.JSON(StatusFor(be.Kind), HTTPError{Code: be.Code, Kind: be.Kind, Detail: be.Detail})
		return
	}

	if IsExclusionConflict(err) {
		c.JSON(http.StatusConflict, HTTPError{
			Code:   "time_conflict",
			Kind:   KindConflict,
			Detail: "Conflito de horário com outra aula do professor.",
		})
		return
	}

	if IsForeignKeyViolation(err) {
		c.JSON(http.StatusConflict, HTTPError{
			Code:   "in_use",
			Kind:   KindConflict,
			Detail: "Registro em uso por outros cadastros.",
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	_ = c.Error(err)
	Internal(c, fallbackCode, "Erro interno. Tente novamente.")
}

// IsExclusionConflict reports whether err is a PostgreSQL exclusion
// constraint violation (SQLSTATE 23P01).
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01"
	}
	return false
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
