package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/workpulse/hrms-backend-go/internal/config"
	appHTTP "github.com/workpulse/hrms-backend-go/internal/handler/http"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
	"github.com/workpulse/hrms-backend-go/internal/pkg/jwt"
	"github.com/workpulse/hrms-backend-go/internal/repository/postgresql"
	activityService "github.com/workpulse/hrms-backend-go/internal/service/activity"
	attendanceService "github.com/workpulse/hrms-backend-go/internal/service/attendance"
	authService "github.com/workpulse/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/workpulse/hrms-backend-go/internal/service/dashboard"
	employeeDashboardService "github.com/workpulse/hrms-backend-go/internal/service/employee_dashboard"
	leaveService "github.com/workpulse/hrms-backend-go/internal/service/leave"
	payrollService "github.com/workpulse/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Error resolving timezone: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "hrms-backend"),
	)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	activityLogRepo := postgresql.NewActivityLogRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	empDashboardRepo := postgresql.NewEmployeeDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	recorder := activityService.NewRecorder(activityLogRepo, logger)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, recorder, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, txManager, recorder, loc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, recorder, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, payrollRepo, activityLogRepo, loc)
	empDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(empDashboardRepo, attendanceRepo, payrollRepo, loc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, empDashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		dashboardHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
