package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/wkleong/outletmap"
	"github.com/wkleong/outletmap/gemini"
	"github.com/wkleong/outletmap/rod"
	outletslog "github.com/wkleong/outletmap/slog"
	"github.com/wkleong/outletmap/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	OutletService outletmap.OutletService
	RunService    outletmap.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("outletmap"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'outletmap --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set OUTLETMAP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.OutletService = outletslog.NewLoggingOutletService(sqlite.NewOutletService(m.DB), logger)
	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Outlets = m.OutletService
	deps.Runs = m.RunService

	// Wire command-specific dependencies based on command
	if cmd == "scrape" {
		extractor, err := rod.NewExtractor()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer extractor.Close()

		deps.Extractor = rod.NewLoggingExtractor(extractor, logger)
	}

	if cmd == "ask" || cmd == "serve" {
		resolver := &outletmap.Resolver{Locations: configuredLocations()}

		// The generative fallback path is active only when an API key is
		// configured; without one the resolver uses its fixed fallback.
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			resolver.Asker = gemini.NewAsker(client, os.Getenv("OUTLETMAP_MODEL"))
		}

		deps.Resolver = resolver
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("OUTLETMAP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "outletmap.db"
	}
	dir := filepath.Join(home, ".outletmap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "outletmap.db")
}

// configuredLocations returns the recognized location keywords for the
// resolver. Keywords are configured, not inferred.
func configuredLocations() []string {
	if v := os.Getenv("OUTLETMAP_LOCATIONS"); v != "" {
		parts := strings.Split(v, ",")
		locations := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				locations = append(locations, p)
			}
		}
		return locations
	}
	return []string{"Bangsar"}
}
