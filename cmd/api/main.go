package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/config"
	appHTTP "github.com/sitehub/sitehub-backend-go/internal/handler/http"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/email"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/oauth"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/storage"
	"github.com/sitehub/sitehub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sitehub/sitehub-backend-go/internal/service/attendance"
	authService "github.com/sitehub/sitehub-backend-go/internal/service/auth"
	clientService "github.com/sitehub/sitehub-backend-go/internal/service/client"
	dailyLogService "github.com/sitehub/sitehub-backend-go/internal/service/dailylog"
	employeeService "github.com/sitehub/sitehub-backend-go/internal/service/employee"
	fileService "github.com/sitehub/sitehub-backend-go/internal/service/file"
	payrollService "github.com/sitehub/sitehub-backend-go/internal/service/payroll"
	projectService "github.com/sitehub/sitehub-backend-go/internal/service/project"
	quoteService "github.com/sitehub/sitehub-backend-go/internal/service/quote"
	timeEntryService "github.com/sitehub/sitehub-backend-go/internal/service/timeentry"
	timesheetService "github.com/sitehub/sitehub-backend-go/internal/service/timesheet"
	userService "github.com/sitehub/sitehub-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	dailyLogRepo := postgresql.NewDailyLogRepository(db)
	quoteRepo := postgresql.NewQuoteRepository(db)
	fileRepo := postgresql.NewFileRepository(db)
	signInRepo := postgresql.NewSignInRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService, googleService)
	userSvc := userService.NewUserService(userRepo, refreshTokenRepo, emailService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, employeeRepo)
	dailyLogSvc := dailyLogService.NewDailyLogService(dailyLogRepo, projectRepo)
	quoteSvc := quoteService.NewQuoteService(db, quoteRepo, clientRepo)
	fileSvc := fileService.NewFileService(fileRepo, fileStorage, cfg.Storage.MaxUploadSize)
	attendanceSvc := attendanceService.NewSignInService(signInRepo, employeeRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(timeEntryRepo, timesheetRepo, employeeRepo, projectRepo, signInRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, timeEntryRepo, employeeRepo, projectRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, projectRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		User:       appHTTP.NewUserHandler(userSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		DailyLog:   appHTTP.NewDailyLogHandler(dailyLogSvc),
		Quote:      appHTTP.NewQuoteHandler(quoteSvc),
		File:       appHTTP.NewFileHandler(fileSvc, cfg.Storage.MaxUploadSize),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		TimeEntry:  appHTTP.NewTimeEntryHandler(timeEntrySvc),
		Timesheet:  appHTTP.NewTimesheetHandler(timesheetSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.FrontendURL, cfg.App.Env)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Print("Shutdown error: ", err)
	}
}
