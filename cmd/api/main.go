package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	appHTTP "github.com/teamtrack/teamtrack-backend-go/internal/handler/http"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/clock"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/cron"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/events"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/govuk"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/postgresql"
	activityService "github.com/teamtrack/teamtrack-backend-go/internal/service/activity"
	analyticsService "github.com/teamtrack/teamtrack-backend-go/internal/service/analytics"
	authService "github.com/teamtrack/teamtrack-backend-go/internal/service/auth"
	holidayService "github.com/teamtrack/teamtrack-backend-go/internal/service/holiday"
	leaveService "github.com/teamtrack/teamtrack-backend-go/internal/service/leave"
	masterService "github.com/teamtrack/teamtrack-backend-go/internal/service/master"
	staffService "github.com/teamtrack/teamtrack-backend-go/internal/service/staff"
	targetService "github.com/teamtrack/teamtrack-backend-go/internal/service/target"
	workingdaysService "github.com/teamtrack/teamtrack-backend-go/internal/service/workingdays"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	serviceTypeRepo := postgresql.NewServiceTypeRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	annualTargetRepo := postgresql.NewAnnualTargetRepository(db)
	monthlyTargetRepo := postgresql.NewMonthlyTargetRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	syncStateRepo := postgresql.NewSyncStateRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := events.NewHub()
	clk := clock.System()
	holidayFeed := govuk.NewClient(cfg.Holiday.FeedURL)

	calculator := workingdaysService.NewCalculator(holidayRepo, leaveRepo, staffRepo, clk)
	authSvc := authService.NewService(staffRepo, jwtService)
	staffSvc := staffService.NewService(staffRepo)
	serviceTypeSvc := masterService.NewServiceTypeService(serviceTypeRepo)
	ruleSvc := masterService.NewRuleService(ruleRepo)
	activitySvc := activityService.NewService(activityRepo, hub)
	targetSvc := targetService.NewService(db, annualTargetRepo, monthlyTargetRepo, activityRepo, ruleRepo, staffRepo, hub, clk)
	holidaySvc := holidayService.NewService(holidayRepo, syncStateRepo, holidayFeed, hub, clk)
	leaveSvc := leaveService.NewService(leaveRepo, staffRepo, hub)
	analyticsSvc := analyticsService.NewService(calculator, activityRepo, monthlyTargetRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc),
		Staff:       appHTTP.NewStaffHandler(staffSvc),
		Master:      appHTTP.NewMasterHandler(serviceTypeSvc, ruleSvc),
		Activity:    appHTTP.NewActivityHandler(activitySvc),
		Target:      appHTTP.NewTargetHandler(targetSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:     appHTTP.NewHolidayHandler(holidaySvc),
		WorkingDays: appHTTP.NewWorkingDaysHandler(calculator),
		Analytics:   appHTTP.NewAnalyticsHandler(analyticsSvc),
		Events:      appHTTP.NewEventsHandler(hub),
	})

	scheduler := cron.NewScheduler()
	cron.NewHolidayJobs(holidaySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		// SSE connections stay open, so no write timeout.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.App.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
