package main

import (
	"fmt"
	"os"

	"productivity-api/internal/auth"
	"productivity-api/internal/database"
	"productivity-api/internal/handlers"
	"productivity-api/internal/jira"
	"productivity-api/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/go-pkgz/lgr"
)

func main() {
	cfg := ParseFlags()

	if cfg.Debug {
		lgr.Setup(lgr.Debug, lgr.Msec)
		fmt.Fprintln(os.Stdout, cfg.String())
	} else {
		lgr.Setup(lgr.Msec)
		gin.SetMode(gin.ReleaseMode)
	}

	auth.SetSecret(cfg.JWTSecret.Unmask())

	if err := database.InitDB(cfg.DBPath, cfg.Debug); err != nil {
		lgr.Fatalf("[ERROR] failed to init database: %v", err)
	}

	jiraCfg := jira.Config{
		Host:  cfg.Jira.Host,
		Email: cfg.Jira.Email,
		Token: cfg.Jira.Token,
	}
	if jiraCfg.Enabled() {
		handlers.SetJiraClient(jira.NewClient(jiraCfg))
		lgr.Printf("[INFO] jira proxy enabled for %s", jiraCfg.Host)
	} else {
		lgr.Printf("[INFO] jira proxy disabled (missing configuration)")
	}

	router := routes.SetupRoutes()

	lgr.Printf("[INFO] server starting on %s", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		lgr.Fatalf("[ERROR] server stopped: %v", err)
	}
}
