package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jeff1984Sor/app-beach/internal/config"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/middleware"
	"github.com/Jeff1984Sor/app-beach/internal/models"
	"github.com/Jeff1984Sor/app-beach/internal/session"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	store  session.Store
	log    *zap.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, store session.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, store: store, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type userPayload struct {
	ID             uint   `json:"id"`
	Name           string `json:"nome"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfessionalID *uint  `json:"professor_id,omitempty"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ? AND active = ?", email, true).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao autenticar.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	profID, err := h.professionalID(c, &user)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao autenticar.")
		return
	}

	sess := session.Session{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Role:           user.Role,
		ProfessionalID: profID,
		CreatedAt:      time.Now(),
	}
	if err := h.store.Save(c.Request.Context(), sess, h.config.TokenTTL); err != nil {
		h.log.Error("session save failed", zap.Uint("user_id", user.ID), zap.Error(err))
		httperr.Internal(c, "session_save_failed", "Erro ao iniciar sessão.")
		return
	}

	token, err := h.generateToken(&user, sess.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.OK(c, gin.H{
		"usuario": userPayload{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			ProfessionalID: profID,
		},
		"token":      token,
		"expires_in": int(h.config.TokenTTL.Seconds()),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Unauthorized(c, "session_not_in_context", "Sessão não encontrada.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), sess.ID); err != nil {
		h.log.Error("session delete failed", zap.String("session_id", sess.ID), zap.Error(err))
		httperr.Internal(c, "session_delete_failed", "Erro ao encerrar sessão.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Unauthorized(c, "session_not_in_context", "Sessão não encontrada.")
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, sess.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, userPayload{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		ProfessionalID: sess.ProfessionalID,
	})
}

func (h *AuthHandler) professionalID(c *gin.Context, user *models.User) (*uint, error) {
	if user.Role != models.RoleProfessor {
		return nil, nil
	}
	var pro models.Professional
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		First(&pro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pro.ID, nil
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, sessionID string) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.config.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
