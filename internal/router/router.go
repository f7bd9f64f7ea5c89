package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/handlers"
	"github.com/flowmanager-dev/flowmanager/internal/middleware"
)

func NewRouter(appCtx *appcontext.Context) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(appCtx))

	allowOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(appCtx))
			auth.POST("/login", handlers.Login(appCtx))
			auth.POST("/logout", handlers.Logout())
			auth.GET("/me", middleware.AuthMiddleware(appCtx), handlers.Me(appCtx))
		}

		users := api.Group("/users", middleware.AuthMiddleware(appCtx))
		{
			users.GET("", handlers.ListUsers(appCtx))
			users.POST("", handlers.CreateUser(appCtx))
			users.GET("/:id", handlers.GetUser(appCtx))
			users.PUT("/:id", handlers.UpdateUser(appCtx))
			users.DELETE("/:id", handlers.DeleteUser(appCtx))
			users.POST("/bulk-delete", handlers.BulkDeleteUsers(appCtx))
		}

		projects := api.Group("/projects", middleware.AuthMiddleware(appCtx))
		{
			projects.GET("", handlers.ListProjects(appCtx))
			projects.POST("", handlers.CreateProject(appCtx))
			projects.GET("/:id", handlers.GetProject(appCtx))
			projects.PUT("/:id", handlers.UpdateProject(appCtx))
			projects.DELETE("/:id", handlers.DeleteProject(appCtx))

			projects.GET("/:id/assignments", handlers.ListAssignments(appCtx))
			projects.POST("/:id/assignments", handlers.CreateAssignment(appCtx))
			projects.DELETE("/:id/assignments/:assignment_id", handlers.DeleteAssignment(appCtx))

			projects.GET("/:id/tasks", handlers.ListTasks(appCtx))
			projects.POST("/:id/tasks", handlers.CreateTask(appCtx))

			projects.GET("/:id/reports", handlers.ListReports(appCtx))
			projects.POST("/:id/reports", handlers.GenerateReport(appCtx))
		}

		tasks := api.Group("/tasks", middleware.AuthMiddleware(appCtx))
		{
			tasks.GET("", handlers.ListTasks(appCtx))
			tasks.POST("", handlers.CreateTask(appCtx))
			tasks.GET("/:id", handlers.GetTask(appCtx))
			tasks.PUT("/:id", handlers.UpdateTask(appCtx))
			tasks.DELETE("/:id", handlers.DeleteTask(appCtx))
		}

		vacations := api.Group("/vacations", middleware.AuthMiddleware(appCtx))
		{
			vacations.GET("", handlers.ListVacations(appCtx))
			vacations.POST("", handlers.CreateVacation(appCtx))
			vacations.GET("/days/:user_id", handlers.GetVacationDays(appCtx))
			vacations.GET("/:id", handlers.GetVacation(appCtx))
			vacations.PUT("/:id", handlers.UpdateVacation(appCtx))
			vacations.DELETE("/:id", handlers.DeleteVacation(appCtx))
		}

		expenses := api.Group("/expenses", middleware.AuthMiddleware(appCtx))
		{
			expenses.GET("", handlers.ListExpenses(appCtx))
			expenses.POST("", handlers.CreateExpense(appCtx))
			expenses.GET("/:id", handlers.GetExpense(appCtx))
			expenses.PUT("/:id", handlers.UpdateExpense(appCtx))
			expenses.DELETE("/:id", handlers.DeleteExpense(appCtx))
		}

		workLogs := api.Group("/work-logs", middleware.AuthMiddleware(appCtx))
		{
			workLogs.GET("", handlers.ListWorkLogs(appCtx))
			workLogs.POST("", handlers.CreateWorkLog(appCtx))
			workLogs.GET("/:id", handlers.GetWorkLog(appCtx))
			workLogs.PUT("/:id", handlers.UpdateWorkLog(appCtx))
			workLogs.DELETE("/:id", handlers.DeleteWorkLog(appCtx))
		}
	}

	return r
}
