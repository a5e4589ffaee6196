package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postdeck/infra/config"
	"github.com/CrestNiraj12/postdeck/infra/editor"
	"github.com/CrestNiraj12/postdeck/infra/idgen"
	"github.com/CrestNiraj12/postdeck/infra/placeholder"
	"github.com/CrestNiraj12/postdeck/state"
	"github.com/CrestNiraj12/postdeck/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: postdeck [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// newLogger builds the process logger. The TUI owns the terminal, so logs go
// to a file or nowhere.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return logger, func() { _ = f.Close() }, nil
}

// prefetchUsers loads the author list into the store before the UI mounts.
// A failure is recorded in the users slice and does not stop startup.
func prefetchUsers(ctx context.Context, store *state.Store, client *placeholder.Client, timeout time.Duration, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if _, err := state.Run(ctx, store, state.FetchUsers(placeholder.NewUserService(client))); err != nil {
		logger.Warn("prefetch users failed", slog.String("error", err.Error()))
	}
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("postdeck %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// 2. Build infrastructure.
	ctx := context.Background()
	client := placeholder.NewClient(cfg.APIURL, cfg.HTTPTimeout, logger)
	store := state.NewStore(logger)

	// 3. Fetch the author list once, before anything renders.
	prefetchUsers(ctx, store, client, cfg.HTTPTimeout, logger)

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(ctx, tui.Deps{
		Store:  store,
		Posts:  placeholder.NewPostService(client),
		Users:  placeholder.NewUserService(client),
		IDs:    idgen.NewUUID(),
		Clock:  time.Now,
		Editor: editor.NewEnvEditor(),
		Logger: logger,
	})

	// 5. Run.
	logger.Info("starting", slog.String("api", cfg.APIURL))
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "postdeck: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
