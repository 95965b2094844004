package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/user"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/middleware"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
)

// Handlers carries every resource handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Employee   EmployeeHandler
	Client     ClientHandler
	Project    ProjectHandler
	DailyLog   DailyLogHandler
	Quote      QuoteHandler
	File       FileHandler
	Attendance AttendanceHandler
	TimeEntry  TimeEntryHandler
	Timesheet  TimesheetHandler
	Payroll    PayrollHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL string, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitehub-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", h.User.ListUsers)
				r.Post("/", h.User.CreateUser)
				r.Get("/{id}", h.User.GetUser)
				r.Put("/{id}", h.User.UpdateUser)
				r.Delete("/{id}", h.User.DeleteUser)
				r.Post("/{id}/reset-password", h.User.ResetPassword)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/", h.Employee.ListEmployees)
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/{id}", h.Employee.GetEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", h.Employee.CreateEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Put("/{id}", h.Employee.UpdateEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Delete("/{id}", h.Employee.DeleteEmployee)

				r.With(middleware.RequirePermission(user.PermissionSignInView)).Get("/{id}/attendance", h.Attendance.History)
			})

			r.Route("/clients", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionClientView)).Get("/", h.Client.ListClients)
				r.With(middleware.RequirePermission(user.PermissionClientView)).Get("/{id}", h.Client.GetClient)
				r.With(middleware.RequirePermission(user.PermissionClientManage)).Post("/", h.Client.CreateClient)
				r.With(middleware.RequirePermission(user.PermissionClientManage)).Put("/{id}", h.Client.UpdateClient)
				r.With(middleware.RequirePermission(user.PermissionClientManage)).Delete("/{id}", h.Client.DeleteClient)

				r.With(middleware.RequirePermission(user.PermissionProjectView)).Get("/{id}/projects", h.Project.ListClientProjects)
				r.With(middleware.RequirePermission(user.PermissionClientView)).Get("/{id}/contacts", h.Client.ListContacts)
				r.With(middleware.RequirePermission(user.PermissionClientManage)).Post("/{id}/contacts", h.Client.CreateContact)
				r.With(middleware.RequirePermission(user.PermissionClientManage)).Delete("/{id}/contacts/{contactID}", h.Client.DeleteContact)
			})

			r.Route("/projects", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionProjectView)).Get("/", h.Project.ListProjects)
				r.With(middleware.RequirePermission(user.PermissionProjectView)).Get("/{id}", h.Project.GetProject)
				r.With(middleware.RequirePermission(user.PermissionProjectManage)).Post("/", h.Project.CreateProject)
				r.With(middleware.RequirePermission(user.PermissionProjectManage)).Put("/{id}", h.Project.UpdateProject)
				r.With(middleware.RequirePermission(user.PermissionProjectManage)).Delete("/{id}", h.Project.DeleteProject)

				r.With(middleware.RequirePermission(user.PermissionProjectView)).Get("/{id}/members", h.Project.ListMembers)
				r.With(middleware.RequirePermission(user.PermissionProjectManage)).Put("/{id}/members", h.Project.AssignMembers)

				r.With(middleware.RequirePermission(user.PermissionDailyLogView)).Get("/{id}/daily-logs", h.DailyLog.ListProjectDailyLogs)
				r.With(middleware.RequirePermission(user.PermissionFileView)).Get("/{id}/files", h.File.ListProjectFiles)
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/{id}/cost-report", h.Payroll.ProjectCostReport)
			})

			r.Route("/daily-logs", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDailyLogView)).Get("/", h.DailyLog.ListDailyLogs)
				r.With(middleware.RequirePermission(user.PermissionDailyLogView)).Get("/stats", h.DailyLog.Stats)
				r.With(middleware.RequirePermission(user.PermissionDailyLogView)).Get("/{id}", h.DailyLog.GetDailyLog)
				r.With(middleware.RequirePermission(user.PermissionDailyLogManage)).Post("/", h.DailyLog.CreateDailyLog)
				r.With(middleware.RequirePermission(user.PermissionDailyLogManage)).Put("/{id}", h.DailyLog.UpdateDailyLog)
				r.With(middleware.RequirePermission(user.PermissionDailyLogManage)).Delete("/{id}", h.DailyLog.DeleteDailyLog)
			})

			r.Route("/quotes", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionQuoteView)).Get("/", h.Quote.ListQuotes)
				r.With(middleware.RequirePermission(user.PermissionQuoteView)).Get("/{id}", h.Quote.GetQuote)
				r.With(middleware.RequirePermission(user.PermissionQuoteManage)).Post("/", h.Quote.CreateQuote)
				r.With(middleware.RequirePermission(user.PermissionQuoteManage)).Put("/{id}", h.Quote.UpdateQuote)
				r.With(middleware.RequirePermission(user.PermissionQuoteManage)).Patch("/{id}/status", h.Quote.UpdateQuoteStatus)
				r.With(middleware.RequirePermission(user.PermissionQuoteManage)).Post("/{id}/duplicate", h.Quote.DuplicateQuote)
				r.With(middleware.RequirePermission(user.PermissionQuoteManage)).Delete("/{id}", h.Quote.DeleteQuote)
			})

			r.Route("/files", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionFileUpload)).Post("/", h.File.UploadFile)
				r.With(middleware.RequirePermission(user.PermissionFileUpload)).Post("/bulk", h.File.UploadFiles)
				r.With(middleware.RequirePermission(user.PermissionFileView)).Get("/{id}", h.File.GetFile)
				r.With(middleware.RequirePermission(user.PermissionFileView)).Get("/{id}/download", h.File.DownloadFile)
				r.With(middleware.RequirePermission(user.PermissionFileView)).Get("/{id}/preview", h.File.PreviewFile)
				r.With(middleware.RequirePermission(user.PermissionFileManage)).Delete("/{id}", h.File.DeleteFile)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionSignInRecord)).Post("/sign-in", h.Attendance.SignIn)
				r.With(middleware.RequirePermission(user.PermissionSignInRecord)).Post("/sign-in/bulk", h.Attendance.BulkSignIn)
				r.With(middleware.RequirePermission(user.PermissionSignInRecord)).Post("/{id}/sign-out", h.Attendance.SignOut)
				r.With(middleware.RequirePermission(user.PermissionSignInView)).Get("/", h.Attendance.ListSignIns)
				r.With(middleware.RequirePermission(user.PermissionSignInView)).Get("/today", h.Attendance.ListToday)
				r.With(middleware.RequirePermission(user.PermissionSignInView)).Get("/active", h.Attendance.ListActive)

				r.With(middleware.RequirePermission(user.PermissionTimeEntryCreate)).Post("/{id}/time-entry", h.TimeEntry.CreateFromSignIn)
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionTimeEntryView)).Get("/", h.TimeEntry.ListTimeEntries)
				r.With(middleware.RequirePermission(user.PermissionTimeEntryView)).Get("/{id}", h.TimeEntry.GetTimeEntry)
				r.With(middleware.RequirePermission(user.PermissionTimeEntryCreate)).Post("/", h.TimeEntry.CreateTimeEntry)
				r.With(middleware.RequirePermission(user.PermissionTimeEntryCreate)).Post("/bulk", h.TimeEntry.BulkCreateTimeEntries)
				r.With(middleware.RequirePermission(user.PermissionTimeEntryCreate)).Put("/{id}", h.TimeEntry.UpdateTimeEntry)
				r.With(middleware.RequirePermission(user.PermissionTimeEntryApprove)).Post("/{id}/approve", h.TimeEntry.ApproveTimeEntry)
				r.With(middleware.RequirePermission(user.PermissionTimeEntryApprove)).Post("/{id}/reject", h.TimeEntry.RejectTimeEntry)
				r.With(middleware.RequirePermission(user.PermissionTimeEntryDelete)).Delete("/{id}", h.TimeEntry.DeleteTimeEntry)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionTimesheetView)).Get("/", h.Timesheet.ListTimesheets)
				r.With(middleware.RequirePermission(user.PermissionTimesheetView)).Get("/{id}", h.Timesheet.GetTimesheet)
				r.With(middleware.RequirePermission(user.PermissionTimesheetView)).Get("/{id}/export", h.Timesheet.ExportTimesheet)
				r.With(middleware.RequirePermission(user.PermissionTimesheetManage)).Post("/", h.Timesheet.CreateTimesheet)
				r.With(middleware.RequirePermission(user.PermissionTimesheetManage)).Put("/{id}", h.Timesheet.UpdateTimesheet)
				r.With(middleware.RequirePermission(user.PermissionTimesheetManage)).Post("/{id}/submit", h.Timesheet.SubmitTimesheet)
				r.With(middleware.RequirePermission(user.PermissionTimesheetApprove)).Post("/{id}/approve", h.Timesheet.ApproveTimesheet)
				r.With(middleware.RequirePermission(user.PermissionTimesheetManage)).Delete("/{id}", h.Timesheet.DeleteTimesheet)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPayrollView))
				r.Get("/daily", h.Payroll.DailyReport)
				r.Get("/weekly", h.Payroll.WeeklyReport)
				r.Get("/summary", h.Payroll.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollExport))
					r.Get("/daily/export", h.Payroll.ExportDailyCSV)
					r.Get("/weekly/export", h.Payroll.ExportWeeklyCSV)
				})
			})
		})
	})

	return r
}
