package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/alnajat-edu/portal-api/api/swagger"
	"github.com/alnajat-edu/portal-api/internal/handler"
	"github.com/alnajat-edu/portal-api/internal/middleware"
	"github.com/alnajat-edu/portal-api/internal/seed"
	"github.com/alnajat-edu/portal-api/internal/service"
	"github.com/alnajat-edu/portal-api/internal/store"
	"github.com/alnajat-edu/portal-api/pkg/config"
	"github.com/alnajat-edu/portal-api/pkg/export"
	"github.com/alnajat-edu/portal-api/pkg/logger"
	corsmiddleware "github.com/alnajat-edu/portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/alnajat-edu/portal-api/pkg/middleware/requestid"
)

// @title Al-Najat Portal API
// @version 0.1.0
// @description School portal backend: dashboards, attendance, grades, chat and assistant
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	seedValue := cfg.Seed.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	data := seed.Generate(seed.Config{
		SectionsPerGrade:   cfg.Seed.SectionsPerGrade,
		ParentCount:        cfg.Seed.ParentCount,
		StudentsPerSection: cfg.Seed.StudentsPerSection,
		TeacherCount:       cfg.Seed.TeacherCount,
		TeacherSections:    cfg.Seed.TeacherSections,
		ScheduleFill:       cfg.Seed.ScheduleFill,
		EmailDomain:        cfg.Seed.EmailDomain,
	}, rand.New(rand.NewSource(seedValue)), time.Now())
	st := store.New(data)
	logr.Sugar().Infow("seed generated",
		"seed", seedValue,
		"students", len(data.Students),
		"teachers", len(data.Teachers),
		"parents", len(data.Parents),
	)

	validate := validator.New()

	metrics := service.NewMetricsService()
	attendance := service.NewAttendanceService(st, validate, logr)
	announcements := service.NewAnnouncementService(st, validate, logr)
	grades := service.NewGradeService(st, validate, logr)
	messages := service.NewMessageService(st, validate, logr)
	users := service.NewUserService(st, validate, logr)
	auth := service.NewAuthService(st, validate, logr)
	schedule := service.NewScheduleService(st, logr)
	dashboard := service.NewDashboardService(st, attendance, messages, announcements, logr)
	assistant := service.NewAssistantService(st, cfg.Assistant, &http.Client{Timeout: 60 * time.Second}, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.ActingUser(st))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:         handler.NewAuthHandler(auth),
		Users:        handler.NewUserHandler(users, metrics),
		Attendance:   handler.NewAttendanceHandler(attendance, export.NewPDFExporter(), export.NewCSVExporter(), metrics),
		Announcement: handler.NewAnnouncementHandler(announcements, metrics),
		Grades:       handler.NewGradeHandler(grades, metrics),
		Messages:     handler.NewMessageHandler(messages, metrics),
		Schedule:     handler.NewScheduleHandler(schedule),
		Dashboard:    handler.NewDashboardHandler(dashboard),
		Assistant:    handler.NewAssistantHandler(assistant, export.NewSlidesExporter()),
		Metrics:      handler.NewMetricsHandler(metrics),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
