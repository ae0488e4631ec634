package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/httpresp"
	"github.com/Jeff1984Sor/app-beach/internal/models"
	"github.com/Jeff1984Sor/app-beach/internal/notify"
)

type StudentHandler struct {
	db *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

type CreateStudentRequest struct {
	Name  string `json:"nome" binding:"required,max=120"`
	Phone string `json:"telefone" binding:"max=20"`
	Email string `json:"email" binding:"omitempty,email,max=120"`
}

// ======================================================
// LIST STUDENTS
// ======================================================
func (h *StudentHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var students []models.Student
	if err := q.Order("name ASC").Find(&students).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_students")
		return
	}

	httpresp.List(c, students)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if !bindJSON(c, &req) {
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" {
		normalized, ok := notify.NormalizePhone(phone)
		if !ok {
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
			return
		}
		phone = normalized
	}

	student := models.Student{
		Name:   strings.TrimSpace(req.Name),
		Phone:  phone,
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Status: "ativo",
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&student).Error; err != nil {
		httperr.Respond(c, err, "failed_to_create_student")
		return
	}

	httpresp.Created(c, student)
}
