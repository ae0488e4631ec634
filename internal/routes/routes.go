package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	"github.com/Jeff1984Sor/app-beach/internal/config"
	"github.com/Jeff1984Sor/app-beach/internal/handlers"
	infraRepo "github.com/Jeff1984Sor/app-beach/internal/infra/repository"
	"github.com/Jeff1984Sor/app-beach/internal/middleware"
	"github.com/Jeff1984Sor/app-beach/internal/models"
	"github.com/Jeff1984Sor/app-beach/internal/session"
	ucScheduling "github.com/Jeff1984Sor/app-beach/internal/usecase/scheduling"
)

// Deps are the singletons built by main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions session.Store
	Audit    *audit.Dispatcher
	Calendar ucScheduling.Calendar
	Logger   *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(d.DB)
	log := d.Logger.Named("scheduling")

	// ======================================================
	// USE CASES
	// ======================================================
	listPeriodUC := ucScheduling.NewListAgendaPeriod(schedulingRepo, d.Calendar)
	listProfessionalsUC := ucScheduling.NewListProfessionals(schedulingRepo)

	createBlockOutUC := ucScheduling.NewCreateBlockOut(schedulingRepo, d.Audit, d.Calendar, log)
	listBlockOutsUC := ucScheduling.NewListBlockOuts(schedulingRepo, d.Calendar)
	deleteBlockOutUC := ucScheduling.NewDeleteBlockOut(schedulingRepo, d.Audit)

	saveContractUC := ucScheduling.NewSaveContract(schedulingRepo, d.Audit, d.Calendar)
	listContractsUC := ucScheduling.NewListStudentContracts(schedulingRepo)
	reserveUC := ucScheduling.NewReserveContractLessons(schedulingRepo, d.Audit, d.Calendar, log)

	listLessonsUC := ucScheduling.NewListStudentLessons(schedulingRepo)
	rescheduleUC := ucScheduling.NewRescheduleLesson(schedulingRepo, d.Audit, d.Calendar, log)
	changeStatusUC := ucScheduling.NewChangeLessonStatus(schedulingRepo, d.Audit, d.Calendar)
	availabilityUC := ucScheduling.NewGetAvulsaAvailability(schedulingRepo, d.Calendar)
	createAvulsaUC := ucScheduling.NewCreateAvulsaLesson(schedulingRepo, d.Audit, d.Calendar, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	loc := d.Calendar.Loc

	authHandler := handlers.NewAuthHandler(d.DB, d.Config, d.Sessions, d.Logger)
	userHandler := handlers.NewUserHandler(d.DB, d.Audit, d.Logger)

	agendaHandler := handlers.NewAgendaHandler(
		listPeriodUC,
		listProfessionalsUC,
		createBlockOutUC,
		listBlockOutsUC,
		deleteBlockOutUC,
		loc,
	)
	contractHandler := handlers.NewContractHandler(saveContractUC, listContractsUC, reserveUC, loc)
	lessonHandler := handlers.NewLessonHandler(
		listLessonsUC,
		rescheduleUC,
		changeStatusUC,
		availabilityUC,
		createAvulsaUC,
		loc,
	)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.Calendar.Window, loc)

	studentHandler := handlers.NewStudentHandler(d.DB)
	planHandler := handlers.NewPlanHandler(d.DB)
	unitHandler := handlers.NewUnitHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config, d.Sessions))

		staff := middleware.RequireRole(models.RoleGestor, models.RoleProfessor)
		gestor := middleware.RequireRole(models.RoleGestor)
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/auth/me", authHandler.Me)

			// ------------------------------
			// AGENDA
			// ------------------------------
			agenda := secured.Group("/agenda", staff)
			agenda.GET("/periodo", agendaHandler.Period)
			agenda.GET("/professores", agendaHandler.Professionals)
			agenda.GET("/horario-funcionamento", workingHoursHandler.Get)
			agenda.GET("/bloqueios", agendaHandler.ListBlockOuts)
			agenda.POST("/bloqueios", gestor, agendaHandler.CreateBlockOut)
			agenda.DELETE("/bloqueios/:id", gestor, agendaHandler.DeleteBlockOut)

			// ------------------------------
			// ALUNOS
			// ------------------------------
			alunos := secured.Group("/alunos", staff)
			alunos.GET("", studentHandler.List)
			alunos.POST("", studentHandler.Create)

			alunos.GET("/:id/contratos", contractHandler.List)
			alunos.POST("/:id/contratos", contractHandler.Create)
			alunos.PUT("/:id/contratos/:cid", contractHandler.Update)
			alunos.POST("/:id/contratos/:cid/reservas", contractHandler.Reserve)

			alunos.GET("/:id/aulas", lessonHandler.List)
			alunos.PUT("/:id/aulas/:aid/reagendar", lessonHandler.Reschedule)
			alunos.PUT("/:id/aulas/:aid/status", lessonHandler.ChangeStatus)

			alunos.GET("/:id/aulas-avulsas/disponibilidade", lessonHandler.Availability)
			alunos.POST("/:id/aulas-avulsas", lessonHandler.CreateAvulsa)

			// ------------------------------
			// CADASTROS
			// ------------------------------
			secured.GET("/planos", staff, planHandler.List)
			secured.POST("/planos", gestor, planHandler.Create)
			secured.PUT("/planos/:id", gestor, planHandler.Update)
			secured.DELETE("/planos/:id", gestor, planHandler.Delete)

			secured.GET("/unidades", staff, unitHandler.List)
			secured.POST("/unidades", gestor, unitHandler.Create)

			secured.POST("/usuarios", gestor, userHandler.Create)
			secured.GET("/audit-logs", gestor, auditLogsHandler.List)
		}
	}
}
