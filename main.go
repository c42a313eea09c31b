package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"metalab_backend/internals/configs"
	database "metalab_backend/internals/databases"
	aiModelModel "metalab_backend/internals/features/analysis/aimodel/model"
	analyzeClient "metalab_backend/internals/features/analysis/analyze/client"
	analyzeModel "metalab_backend/internals/features/analysis/analyze/model"
	analyzeService "metalab_backend/internals/features/analysis/analyze/service"
	evaluationModel "metalab_backend/internals/features/evaluations/evaluation/model"
	projectModel "metalab_backend/internals/features/projects/project/model"
	serviceRequesterModel "metalab_backend/internals/features/projects/service_requester/model"
	sessionModel "metalab_backend/internals/features/users/auth/model"
	scheduler "metalab_backend/internals/features/users/auth/scheduler"
	userModel "metalab_backend/internals/features/users/user/model"
	middlewares "metalab_backend/internals/middlewares"
	routes "metalab_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		BodyLimit:             32 * 1024 * 1024, // upload gambar struktur mikro bisa besar
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.DB.AutoMigrate(
		&userModel.UserModel{},
		&sessionModel.SessionModel{},
		&projectModel.ProjectModel{},
		&serviceRequesterModel.ServiceRequesterModel{},
		&evaluationModel.ProjectEvaluationModel{},
		&analyzeModel.AnalyzedResultModel{},
		&analyzeModel.SampleModel{},
		&aiModelModel.AiModelModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}

	scheduler.StartSessionCleanupScheduler(database.DB)

	aiCfg, err := analyzeClient.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Konfigurasi layanan AI tidak valid: %v", err)
	}
	analyzer := analyzeService.NewAnalyzeService(
		database.DB,
		analyzeClient.NewHTTPClassifier(aiCfg),
		aiCfg,
	)

	routes.BaseRoutes(app)
	routes.SetupRoutes(app, database.DB, analyzer)

	app.Server().ReadTimeout = 15 * time.Second
	// Run analisa sinkron: 3×N panggilan AI bisa makan waktu beberapa menit.
	app.Server().WriteTimeout = 5 * time.Minute
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
