package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/middleware"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUserHandler(db *gorm.DB, dispatcher *audit.Dispatcher, log *zap.Logger) *UserHandler {
	return &UserHandler{db: db, audit: dispatcher, log: log}
}

type CreateUserRequest struct {
	Name       string  `json:"nome" binding:"required,max=120"`
	Email      string  `json:"email" binding:"required,email,max=120"`
	Password   string  `json:"senha" binding:"required,min=6"`
	Role       string  `json:"role" binding:"required,oneof=gestor professor aluno"`
	HourlyRate float64 `json:"valor_hora" binding:"gte=0"`
}

// Create registers a user. Professors get their professional row in the
// same transaction so they show up in the agenda right away.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Role:         req.Role,
		Active:       true,
	}

	var professionalID *uint
	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if user.Role != models.RoleProfessor {
			return nil
		}
		pro := models.Professional{UserID: user.ID, HourlyRate: req.HourlyRate}
		if err := tx.Create(&pro).Error; err != nil {
			return err
		}
		professionalID = &pro.ID
		return nil
	})
	if httperr.IsUniqueViolation(err) {
		httperr.Write(c, http.StatusConflict, "email_already_exists", "Já existe um usuário com este e-mail.")
		return
	}
	if err != nil {
		h.log.Error("user create failed", zap.String("email", user.Email), zap.Error(err))
		httperr.Respond(c, err, "failed_to_create_user")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	httpresp.Created(c, userPayload{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		ProfessionalID: professionalID,
	})
}
