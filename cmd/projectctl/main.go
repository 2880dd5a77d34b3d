// Package main is projectctl, a command-line client for a running board
// server. It adds, lists, and moves projects through the JSON API.
//
// Usage:
//
//	projectctl [global flags] add -title T -description D -people N
//	projectctl [global flags] list [-status active|finished]
//	projectctl [global flags] move -status finished ID...
//
// Global flags:
//
//	-profile     config profile (default $APP_PROFILE, else "local")
//	-config-dir  directory holding the YAML config files (default "configs")
//	-url         board server base URL, overriding client.base_url
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/jsamuelsen11/projectboard/internal/adapters/clients/board"
	"github.com/jsamuelsen11/projectboard/internal/app/fanout"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const (
	defaultProfile = "local"
	moveWorkers    = 4
)

var errUsage = errors.New("usage: projectctl [-profile P] [-config-dir D] [-url U] add|list|move [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("projectctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	profile := global.String("profile", envOr("APP_PROFILE", defaultProfile), "config profile")
	configDir := global.String("config-dir", "configs", "directory holding the YAML config files")
	baseURL := global.String("url", "", "board server base URL (overrides client.base_url)")
	if err := global.Parse(args); err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *baseURL != "" {
		cfg.Client.BaseURL = *baseURL
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	client := board.NewClient(httpclient.New(&cfg.Client, "board-api", nil, logger), logger)

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "add":
		return runAdd(ctx, client, cmdArgs, stdout, stderr)
	case "list":
		return runList(ctx, client, cmdArgs, stdout, stderr)
	case "move":
		return runMove(ctx, client, cmdArgs, stdout, stderr, logger)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runAdd(ctx context.Context, client ports.BoardClient, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title := fs.String("title", "", "project title (required)")
	description := fs.String("description", "", "project description (at least 5 characters)")
	people := fs.String("people", "", "number of people, 1 to 5")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := client.CreateProject(ctx, ports.ProjectInput{
		Title:       *title,
		Description: *description,
		People:      *people,
	})
	if err != nil {
		return fmt.Errorf("adding project: %w", err)
	}

	_, err = fmt.Fprintln(stdout, p.ID)
	return err
}

func runList(ctx context.Context, client ports.BoardClient, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rawStatus := fs.String("status", "", "only list projects with this status (active or finished)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter *project.Status
	if *rawStatus != "" {
		s, err := project.ParseStatus(*rawStatus)
		if err != nil {
			return err
		}
		filter = &s
	}

	projects, err := client.ListProjects(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	return writeProjects(stdout, projects)
}

func runMove(
	ctx context.Context,
	client ports.BoardClient,
	args []string,
	stdout, stderr io.Writer,
	logger *slog.Logger,
) error {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rawStatus := fs.String("status", project.StatusFinished.String(), "target status (active or finished)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	status, err := project.ParseStatus(*rawStatus)
	if err != nil {
		return err
	}
	ids := fs.Args()
	if len(ids) == 0 {
		return errors.New("move: at least one project ID is required")
	}

	results := fanout.Run(ctx, moveWorkers, ids, func(ctx context.Context, id string) (*project.Project, error) {
		return client.TransitionStatus(ctx, id, status)
	})

	for i, r := range results {
		if r.Err != nil {
			logger.DebugContext(ctx, "move failed",
				slog.String("project_id", ids[i]),
				slog.Any("error", r.Err),
			)
			continue
		}
		if _, err := fmt.Fprintf(stdout, "%s\t%s\n", r.Value.ID, r.Value.Status); err != nil {
			return err
		}
	}

	return fanout.Join(ids, results, func(id string) string { return "project " + id })
}

func writeProjects(w io.Writer, projects []project.Project) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPEOPLE\tTITLE")
	for i := range projects {
		p := &projects[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.ID, p.Status, p.People, p.Title)
	}
	return tw.Flush()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
