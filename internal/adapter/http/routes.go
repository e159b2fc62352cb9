package http

import (
	"tracker/internal/adapter/http/handlers"
	"tracker/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, projectHandler *handlers.ProjectHandler, taskHandler *handlers.TaskHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.PUT("/projects/:id/status", projectHandler.UpdateProjectStatus)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)
		api.GET("/projects/:id/tasks", taskHandler.ListProjectTasks)

		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.PUT("/tasks/:id/status", taskHandler.UpdateTaskStatus)
		api.PUT("/tasks/:id/priority", taskHandler.UpdateTaskPriority)
		api.PUT("/tasks/:id/assignee", taskHandler.AssignTask)
		api.PUT("/tasks/:id/due-date", taskHandler.SetTaskDueDate)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
	}
}
