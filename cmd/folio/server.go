package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kalambet/folio/internal/api"
	"github.com/kalambet/folio/internal/config"
	"github.com/kalambet/folio/internal/download"
	"github.com/kalambet/folio/internal/storage"
	"github.com/kalambet/folio/internal/view"
	"github.com/kalambet/folio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume page (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the server is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		return showStatus(cmd.Context(), client)
	},
}

// app is everything serve wires together from a Config.
type app struct {
	handler  http.Handler
	mcp      *server.MCPServer
	download download.Info
}

func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// resumePDF locates the downloadable PDF: the configured file, or the sample
// bundled with the static assets.
func resumePDF(cfg config.Config) (fs.FS, download.Info, error) {
	if cfg.Resume.PDFPath != "" {
		info, err := download.Inspect(cfg.Resume.PDFPath, api.DownloadPrefix)
		if err != nil {
			return nil, download.Info{}, err
		}
		return os.DirFS(filepath.Dir(cfg.Resume.PDFPath)), info, nil
	}
	info, err := download.InspectFS(web.Static(), web.ResumePDF, api.DownloadPrefix)
	if err != nil {
		return nil, download.Info{}, err
	}
	return web.Static(), info, nil
}

func buildApp(cfg config.Config, logger *slog.Logger) (*app, error) {
	doc, err := storage.Load(cfg.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("loading resume: %w", err)
	}

	pdfFS, dl, err := resumePDF(cfg)
	if err != nil {
		return nil, fmt.Errorf("inspecting resume pdf: %w", err)
	}

	static := web.Static()
	if cfg.Static.Dir != "" {
		static = os.DirFS(cfg.Static.Dir)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	projector := view.NewProjector(doc, view.NewMarkdown(), dl, api.ResumePath)

	return &app{
		handler: api.NewHandler(api.Deps{
			Projector: projector,
			Renderer:  renderer,
			Static:    static,
			Download:  dl,
			PDF:       pdfFS,
			Logger:    logger,
		}),
		mcp: api.NewMCPServer(api.MCPDeps{
			Projector: projector,
			Download:  dl,
			Version:   version,
		}),
		download: dl,
	}, nil
}

func runServer(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "folio version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	a, err := buildApp(cfg, logger)
	if err != nil {
		return err
	}
	source := cfg.Data.Path
	if source == "" {
		source = "bundled sample"
	}
	slog.Info("resume loaded", "source", source, "pdf", a.download.Name, "pages", a.download.Pages)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fmt.Fprintf(os.Stderr, "folio listening on http://%s%s\n", cfg.Addr(), api.ResumePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		fmt.Fprintln(os.Stderr, "shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.MCP.Enabled {
		stdioSrv := server.NewStdioServer(a.mcp)
		g.Go(func() error {
			slog.Info("MCP server started (stdio transport)")
			if err := stdioSrv.Listen(gctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("MCP stdio server: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

func showStatus(ctx context.Context, client *apiClient) error {
	resp, err := client.get(ctx, "/health", nil)
	if err != nil {
		printStatus("Server", "stopped")
		return nil
	}
	var health struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(resp, &health); err != nil {
		printStatus("Server", "error (%v)", err)
		return nil
	}
	printStatus("Server", "running at %s", client.baseURL)

	var categories []view.CategoryButton
	if resp, err := client.get(ctx, "/api/categories", nil); err == nil {
		if decodeJSON(resp, &categories) == nil {
			// Minus the synthetic "All" entry.
			printStatus("Categories", "%d", max(len(categories)-1, 0))
		}
	}

	var bg view.BackgroundView
	if resp, err := client.get(ctx, "/api/background", nil); err == nil {
		if decodeJSON(resp, &bg) == nil {
			printStatus("Download", "%s (%s)", bg.Download.Label(), bg.Download.URL)
		}
	}
	return nil
}
