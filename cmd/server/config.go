package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/agalitsyn/flagutils"
	"github.com/agalitsyn/secret"
)

const EnvPrefix = "PRODUCTIVITY"

type Config struct {
	Addr   string
	DBPath string
	Debug  bool

	JWTSecret secret.String

	Jira struct {
		Host  string
		Email string
		Token secret.String
	}
}

func (c Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(0)
	}
	return string(b)
}

func ParseFlags() Config {
	var cfg Config

	addr := flag.String("addr", ":8008", "HTTP listen address.")
	dbPath := flag.String("db-path", "productivity.db", "Path to the SQLite database file.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret.")
	jiraHost := flag.String("jira-host", "", "Jira instance URL (leave empty to disable the proxy).")
	jiraEmail := flag.String("jira-email", "", "Jira account email.")
	jiraToken := flag.String("jira-token", "", "Jira API token.")

	flagutils.Prefix = EnvPrefix
	flagutils.Parse()
	flag.Parse()

	cfg.Addr = *addr
	cfg.DBPath = *dbPath
	cfg.Debug = *debug
	cfg.JWTSecret = secret.NewString(*jwtSecret)
	cfg.Jira.Host = *jiraHost
	cfg.Jira.Email = *jiraEmail
	cfg.Jira.Token = secret.NewString(*jiraToken)

	return cfg
}
