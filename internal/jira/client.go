package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agalitsyn/secret"
)

// Config holds the connection settings for a Jira Cloud instance. The
// integration is read-only: the client only ever issues GET requests.
type Config struct {
	Host  string
	Email string
	Token secret.String
}

// Enabled reports whether all settings required to reach Jira are present.
func (c Config) Enabled() bool {
	return c.Host != "" && c.Email != "" && c.Token.Unmask() != ""
}

// APIError is returned when Jira answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira: status %d: %s", e.StatusCode, e.Body)
}

// Client is a minimal read-only client for the Jira REST API v3,
// authenticated with Basic auth (email:token).
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: Config{
			Host:  strings.TrimRight(cfg.Host, "/"),
			Email: cfg.Email,
			Token: cfg.Token,
		},
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Email returns the account email the client authenticates as.
func (c *Client) Email() string {
	return c.cfg.Email
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Host+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.cfg.Email, c.cfg.Token.Unmask())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return json.Unmarshal(body, out)
}

// Myself fetches the authenticated account, used as a connection check.
func (c *Client) Myself(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/rest/api/3/myself", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Project is the trimmed-down projection of a Jira project returned to the
// frontend.
type Project struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Lead        struct {
		DisplayName  string `json:"displayName"`
		EmailAddress string `json:"email"`
	} `json:"lead"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Style       string `json:"style,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Simplified  bool   `json:"simplified"`
	IsPrivate   bool   `json:"isPrivate"`
}

type rawProject struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Lead        struct {
		DisplayName  string `json:"displayName"`
		EmailAddress string `json:"emailAddress"`
	} `json:"lead"`
	AvatarURLs     map[string]string `json:"avatarUrls"`
	Style          string            `json:"style"`
	ProjectTypeKey string            `json:"projectTypeKey"`
	Simplified     bool              `json:"simplified"`
	IsPrivate      bool              `json:"isPrivate"`
}

// ListProjects returns the visible projects, ordered by name.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var page struct {
		Values []rawProject `json:"values"`
	}
	path := "/rest/api/3/project/search?expand=description,lead,url&orderBy=name&maxResults=100"
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(page.Values))
	for _, p := range page.Values {
		out := Project{
			ID:          p.ID,
			Key:         p.Key,
			Name:        p.Name,
			Description: p.Description,
			AvatarURL:   p.AvatarURLs["48x48"],
			Style:       p.Style,
			ProjectType: p.ProjectTypeKey,
			Simplified:  p.Simplified,
			IsPrivate:   p.IsPrivate,
		}
		out.Lead.DisplayName = p.Lead.DisplayName
		out.Lead.EmailAddress = p.Lead.EmailAddress
		projects = append(projects, out)
	}
	return projects, nil
}

// Issue is the trimmed-down projection of a Jira issue. Description is an
// Atlassian Document Format tree, passed through untouched.
type Issue struct {
	ID          string          `json:"id"`
	Key         string          `json:"key"`
	Summary     string          `json:"summary"`
	Description json.RawMessage `json:"description,omitempty"`
	Project     struct {
		ID   string `json:"id"`
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"project"`
	Type struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"type"`
	Status struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	} `json:"status"`
	Priority string    `json:"priority,omitempty"`
	Assignee *Assignee `json:"assignee"`
	Created  string    `json:"created,omitempty"`
	DueDate  string    `json:"dueDate,omitempty"`
}

type Assignee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type rawIssue struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields struct {
		Summary     string          `json:"summary"`
		Description json.RawMessage `json:"description"`
		Project     struct {
			ID   string `json:"id"`
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"project"`
		IssueType struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"issuetype"`
		Status struct {
			Name           string `json:"name"`
			StatusCategory struct {
				Key string `json:"key"`
			} `json:"statusCategory"`
		} `json:"status"`
		Priority struct {
			Name string `json:"name"`
		} `json:"priority"`
		Assignee *struct {
			DisplayName  string `json:"displayName"`
			EmailAddress string `json:"emailAddress"`
		} `json:"assignee"`
		Created string `json:"created"`
		DueDate string `json:"duedate"`
	} `json:"fields"`
}

func (r rawIssue) format() Issue {
	issue := Issue{
		ID:          r.ID,
		Key:         r.Key,
		Summary:     r.Fields.Summary,
		Description: r.Fields.Description,
		Priority:    r.Fields.Priority.Name,
		Created:     r.Fields.Created,
		DueDate:     r.Fields.DueDate,
	}
	issue.Project = r.Fields.Project
	issue.Type = r.Fields.IssueType
	issue.Status.Name = r.Fields.Status.Name
	issue.Status.Category = r.Fields.Status.StatusCategory.Key
	if r.Fields.Assignee != nil {
		issue.Assignee = &Assignee{
			Name:  r.Fields.Assignee.DisplayName,
			Email: r.Fields.Assignee.EmailAddress,
		}
	}
	return issue
}

// SearchResult holds one page of a JQL search.
type SearchResult struct {
	Total  int     `json:"total"`
	Issues []Issue `json:"issues"`
}

// SearchIssues runs a JQL query and returns the formatted matches.
func (c *Client) SearchIssues(ctx context.Context, jql string) (*SearchResult, error) {
	var page struct {
		Total  int        `json:"total"`
		Issues []rawIssue `json:"issues"`
	}
	path := "/rest/api/3/search?jql=" + url.QueryEscape(jql) + "&maxResults=100"
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}

	result := &SearchResult{Total: page.Total, Issues: make([]Issue, 0, len(page.Issues))}
	for _, raw := range page.Issues {
		result.Issues = append(result.Issues, raw.format())
	}
	return result, nil
}

// GetIssue fetches a single issue by key (e.g. PRJ-123).
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	var raw rawIssue
	if err := c.get(ctx, "/rest/api/3/issue/"+url.PathEscape(key), &raw); err != nil {
		return nil, err
	}
	issue := raw.format()
	return &issue, nil
}

// BuildTaskJQL composes the JQL used by the "my tasks" view: issues
// assigned to the account, excluding finished ones, optionally scoped to a
// project or to support tickets, due date first.
func BuildTaskJQL(email, projectKey string, supportOnly bool) string {
	parts := []string{}
	if projectKey != "" {
		parts = append(parts, fmt.Sprintf("project = %q", projectKey))
	}
	if supportOnly {
		parts = append(parts, `issuetype = "SOUTIEN"`)
	}
	parts = append(parts, fmt.Sprintf("assignee = %q", email))
	parts = append(parts, "statusCategory != Done")
	return strings.Join(parts, " AND ") + " ORDER BY duedate ASC"
}
