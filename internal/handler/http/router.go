package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/hrms-backend-go/internal/config"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequireCapability(user.CapabilityAttendanceCheck)).
					Post("/check-in", attendanceHandler.CheckIn)
				r.With(middleware.RequireCapability(user.CapabilityAttendanceCheck)).
					Post("/check-out", attendanceHandler.CheckOut)
				r.With(middleware.RequireCapability(user.CapabilityAttendanceViewOwn)).
					Get("/my", attendanceHandler.GetMyAttendance)
				r.With(middleware.RequireCapability(user.CapabilityAttendanceViewAll)).
					Get("/", attendanceHandler.List)
				r.With(middleware.RequireCapability(user.CapabilityAttendanceDelete)).
					Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequireCapability(user.CapabilityLeaveCreate)).
					Post("/", leaveHandler.Create)
				r.With(middleware.RequireCapability(user.CapabilityLeaveViewOwn)).
					Get("/my", leaveHandler.GetMyLeaveRequests)
				r.With(middleware.RequireCapability(user.CapabilityLeaveViewAll)).
					Get("/", leaveHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(user.CapabilityLeaveDecide))
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.With(middleware.RequireCapability(user.CapabilityPayrollViewOwn)).
					Get("/my", payrollHandler.GetMyPayrolls)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(user.CapabilityPayrollManage))
					r.Get("/", payrollHandler.List)
					r.Post("/", payrollHandler.Create)
					r.Put("/{id}", payrollHandler.Update)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.With(middleware.RequireCapability(user.CapabilityDashboardViewAdmin)).
					Get("/admin", dashboardHandler.GetAdminDashboard)
				r.With(middleware.RequireCapability(user.CapabilityDashboardViewOwn)).
					Get("/me", dashboardHandler.GetMyDashboard)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireCapability(user.CapabilityDashboardViewAdmin))
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
			})
		})
	})

	return r
}
