package routes

import (
	"productivity-api/internal/handlers"
	"productivity-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS middleware (for frontend integration)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes (no authentication required)
	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)

	// Protected routes (authentication required)
	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		// Task endpoints
		protected.GET("/tasks", handlers.GetTasks)
		protected.POST("/tasks", handlers.CreateTask)
		protected.POST("/tasks/reorder", handlers.ReorderTasks)
		protected.GET("/tasks/:id", handlers.GetTaskByID)
		protected.PATCH("/tasks/:id", handlers.UpdateTask)
		protected.PUT("/tasks/:id", handlers.UpdateTask)
		protected.DELETE("/tasks/:id", handlers.DeleteTask)

		// Project endpoints
		protected.GET("/projects", handlers.GetProjects)
		protected.POST("/projects", handlers.CreateProject)
		protected.POST("/projects/reorder", handlers.ReorderProjects)
		protected.GET("/projects/:id", handlers.GetProjectByID)
		protected.PATCH("/projects/:id", handlers.UpdateProject)
		protected.PUT("/projects/:id", handlers.UpdateProject)
		protected.DELETE("/projects/:id", handlers.DeleteProject)

		// Note endpoints
		protected.GET("/notes", handlers.GetNotes)
		protected.POST("/notes", handlers.CreateNote)
		protected.POST("/notes/reorder", handlers.ReorderNotes)
		protected.GET("/notes/:id", handlers.GetNoteByID)
		protected.PATCH("/notes/:id", handlers.UpdateNote)
		protected.PUT("/notes/:id", handlers.UpdateNote)
		protected.DELETE("/notes/:id", handlers.DeleteNote)

		// Current user endpoints
		protected.GET("/user", handlers.GetCurrentUser)
		protected.POST("/user/change-password", handlers.ChangePassword)

		// Read-only Jira proxy
		protected.GET("/jira/test", handlers.TestJiraConnection)
		protected.GET("/jira/projects", handlers.GetJiraProjects)
		protected.GET("/jira/tasks", handlers.GetJiraTasks)
		protected.GET("/jira/issues/:key", handlers.GetJiraIssue)

		// Change-event push for the user's other tabs
		protected.GET("/ws", handlers.WebSocketHandler)
	}

	return router
}
