package handlers

import (
	"errors"
	"net/http"
	"time"

	"productivity-api/internal/cache"
	"productivity-api/internal/jira"

	"github.com/gin-gonic/gin"
)

// The Jira proxy is read-only and optional; handlers answer 500 with a
// config hint when the client was never configured.
var jiraClient *jira.Client

// Jira answers are cached briefly so list views don't hammer the remote
// API on every refresh.
var jiraCache = cache.New[string, any]()

const (
	jiraProjectsTTL = 5 * time.Minute
	jiraIssuesTTL   = time.Minute
)

// SetJiraClient wires the configured client; nil disables the proxy.
func SetJiraClient(c *jira.Client) {
	jiraClient = c
	jiraCache = cache.New[string, any]()
}

func requireJira(c *gin.Context) (*jira.Client, bool) {
	if jiraClient == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Jira configuration missing"})
		return nil, false
	}
	return jiraClient, true
}

func respondJiraError(c *gin.Context, err error, msg string) {
	var apiErr *jira.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": msg, "details": apiErr.Body})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// TestJiraConnection handles GET /api/jira/test
// Fetches the authenticated Jira account as a connectivity check.
func TestJiraConnection(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	client, ok := requireJira(c)
	if !ok {
		return
	}

	me, err := client.Myself(c.Request.Context())
	if err != nil {
		respondJiraError(c, err, "Failed to connect to Jira")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Connection successful",
		"data":    me,
	})
}

// GetJiraProjects handles GET /api/jira/projects
func GetJiraProjects(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	client, ok := requireJira(c)
	if !ok {
		return
	}

	if cached, ok := jiraCache.Get("projects"); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	projects, err := client.ListProjects(c.Request.Context())
	if err != nil {
		respondJiraError(c, err, "Failed to fetch Jira projects")
		return
	}

	resp := gin.H{"projects": projects, "count": len(projects)}
	jiraCache.Set("projects", resp, jiraProjectsTTL)
	c.JSON(http.StatusOK, resp)
}

// GetJiraTasks handles GET /api/jira/tasks
// Lists open issues assigned to the configured account. Optional query
// params: projectKey, support=true.
func GetJiraTasks(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	client, ok := requireJira(c)
	if !ok {
		return
	}

	projectKey := c.Query("projectKey")
	supportOnly := c.Query("support") == "true"
	jql := jira.BuildTaskJQL(client.Email(), projectKey, supportOnly)

	if cached, ok := jiraCache.Get("search:" + jql); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := client.SearchIssues(c.Request.Context(), jql)
	if err != nil {
		respondJiraError(c, err, "Failed to fetch Jira tasks")
		return
	}

	resp := gin.H{
		"total": result.Total,
		"tasks": result.Issues,
		"filters": gin.H{
			"projectKey":       projectKey,
			"supportTasksOnly": supportOnly,
		},
	}
	jiraCache.Set("search:"+jql, resp, jiraIssuesTTL)
	c.JSON(http.StatusOK, resp)
}

// GetJiraIssue handles GET /api/jira/issues/:key
func GetJiraIssue(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	client, ok := requireJira(c)
	if !ok {
		return
	}

	key := c.Param("key")
	if cached, ok := jiraCache.Get("issue:" + key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	issue, err := client.GetIssue(c.Request.Context(), key)
	if err != nil {
		respondJiraError(c, err, "Failed to fetch Jira issue")
		return
	}

	jiraCache.Set("issue:"+key, issue, jiraIssuesTTL)
	c.JSON(http.StatusOK, issue)
}
