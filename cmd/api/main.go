package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/brightops/peoplehub-backend-go/internal/config"
	appHTTP "github.com/brightops/peoplehub-backend-go/internal/handler/http"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/jwt"
	"github.com/brightops/peoplehub-backend-go/internal/repository/postgresql"
	analyticsService "github.com/brightops/peoplehub-backend-go/internal/service/analytics"
	employeeService "github.com/brightops/peoplehub-backend-go/internal/service/employee"
	leaveService "github.com/brightops/peoplehub-backend-go/internal/service/leave"
	mailService "github.com/brightops/peoplehub-backend-go/internal/service/mail"
	projectService "github.com/brightops/peoplehub-backend-go/internal/service/project"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveApplicationRepo := postgresql.NewLeaveApplicationRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	templateRepo := postgresql.NewEmailTemplateRepository(db)
	smtpRepo := postgresql.NewSmtpSettingsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	empService := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	typeService := leaveService.NewTypeService(leaveTypeRepo)
	applicationService := leaveService.NewApplicationService(db, leaveTypeRepo, leaveBalanceRepo, leaveApplicationRepo, employeeRepo)
	balanceService := leaveService.NewBalanceService(leaveTypeRepo, leaveBalanceRepo, employeeRepo)
	statsService := analyticsService.NewAnalyticsService(leaveApplicationRepo, leaveBalanceRepo, employeeRepo)
	projService := projectService.NewProjectService(projectRepo)
	mailSvc := mailService.NewMailService(templateRepo, smtpRepo)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewEmployeeHandler(empService),
		appHTTP.NewLeaveHandler(typeService, applicationService, balanceService),
		appHTTP.NewAnalyticsHandler(statsService),
		appHTTP.NewProjectHandler(projService),
		appHTTP.NewMailHandler(mailSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
