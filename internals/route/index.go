package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"metalab_backend/internals/constants"
	aiModelRoute "metalab_backend/internals/features/analysis/aimodel/route"
	analyzeRoute "metalab_backend/internals/features/analysis/analyze/route"
	analyzeService "metalab_backend/internals/features/analysis/analyze/service"
	evaluationRoute "metalab_backend/internals/features/evaluations/evaluation/route"
	projectRoute "metalab_backend/internals/features/projects/project/route"
	serviceRequesterRoute "metalab_backend/internals/features/projects/service_requester/route"
	adminRoute "metalab_backend/internals/features/users/admin/route"
	authRoute "metalab_backend/internals/features/users/auth/route"
	userRoute "metalab_backend/internals/features/users/user/route"
	authMiddleware "metalab_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, svc *analyzeService.AnalyzeService) {
	// ===================== AUTH (PUBLIK + PROFIL) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)
	adminRoute.AdminPublicRoutes(app, db)

	// ===================== SUPERADMIN =====================
	log.Println("[INFO] Setting up SUPERADMIN group...")
	superadmin := app.Group("/api/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(
			constants.RoleErrorSuperadmin("manajemen akun"),
			constants.SuperadminOnly...,
		),
	)
	adminRoute.AdminRoutes(superadmin, db)

	// ===================== SUPERVISOR =====================
	log.Println("[INFO] Setting up SUPERVISOR group...")
	supervisor := app.Group("/api/m",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(
			constants.RoleErrorSupervisor("manajemen lab"),
			constants.SupervisorAndAbove...,
		),
	)
	userRoute.UserManagementRoutes(supervisor, db)
	projectRoute.ProjectRoutes(supervisor, db)
	serviceRequesterRoute.ServiceRequesterRoutes(supervisor, db)
	evaluationRoute.EvaluationRoutes(supervisor, db)
	analyzeRoute.AnalyzeRoutes(supervisor, db, svc)
	aiModelRoute.AiModelRoutes(supervisor, db)

	// ===================== END USER =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(
			"❌ Login dibutuhkan untuk mengakses fitur ini.",
			constants.AllRoles...,
		),
	)
	projectRoute.UserProjectRoutes(user, db)
	userRoute.UserRoutes(user, db)
}
