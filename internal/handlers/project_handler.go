package handlers

import (
	"net/http"

	"productivity-api/internal/database"
	"productivity-api/internal/models"
	"productivity-api/internal/realtime"
	"productivity-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreateProjectRequest represents the request payload for creating a project
type CreateProjectRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description *string           `json:"description"`
	Status      string            `json:"status"`
	NextSteps   []models.NextStep `json:"nextSteps"`
	Deployment  *string           `json:"deployment"`
}

// UpdateProjectRequest represents a partial project patch. NextSteps is
// replaced as a whole when present.
type UpdateProjectRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *string            `json:"status"`
	NextSteps   *[]models.NextStep `json:"nextSteps"`
	Deployment  *string            `json:"deployment"`
}

// ReorderProjectsRequest carries the (id, order) batch of a drag-and-drop.
type ReorderProjectsRequest struct {
	Projects []store.OrderUpdate `json:"projects" binding:"required"`
}

// withStepIDs gives every checklist item a stable id so that toggling a
// step does not rely on text equality.
func withStepIDs(steps []models.NextStep) []models.NextStep {
	out := make([]models.NextStep, len(steps))
	for i, s := range steps {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		out[i] = s
	}
	return out
}

// GetProjects handles GET /api/projects
func GetProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projects, err := store.List[models.Project](database.GetDB(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID handles GET /api/projects/:id
func GetProjectByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := store.Get[models.Project](database.GetDB(), userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/projects
func CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		NextSteps:   datatypes.NewJSONSlice(withStepIDs(req.NextSteps)),
		Deployment:  req.Deployment,
		UserID:      userID,
	}

	if err := store.Create(database.GetDB(), &project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "projects", Action: "created", ID: project.ID})
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PATCH /api/projects/:id (PUT is an alias)
func UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	db := database.GetDB()
	project, err := store.Get[models.Project](db, userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to fetch project")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Status != nil {
		if *req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status cannot be empty"})
			return
		}
		project.Status = *req.Status
	}
	if req.NextSteps != nil {
		project.NextSteps = datatypes.NewJSONSlice(withStepIDs(*req.NextSteps))
	}
	if req.Deployment != nil {
		project.Deployment = req.Deployment
	}

	if err := store.Save(db, project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "projects", Action: "updated", ID: project.ID})
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:id
func DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("id")
	if err := store.Delete[models.Project](database.GetDB(), userID, projectID); err != nil {
		respondStoreError(c, err, "Project not found", "Failed to delete project")
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "projects", Action: "deleted", ID: projectID})
	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
		"id":      projectID,
	})
}

// ReorderProjects handles POST /api/projects/reorder
func ReorderProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ReorderProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.Reorder[models.Project](database.GetDB(), userID, req.Projects); err != nil {
		respondStoreError(c, err, "Project not found", "Failed to reorder projects")
		return
	}

	realtime.GetHub().Publish(userID, realtime.Event{Resource: "projects", Action: "reordered"})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
