package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/scholarpage/internal/config"
	"github.com/ziadkadry99/scholarpage/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the page and preview it locally",
	Long: `Builds the page, then serves the output directory over HTTP. With --watch,
edits to the content file, stylesheet, script or assets trigger a rebuild and
open browser tabs reload themselves.`,
	RunE: runServe,
}

func init() {
	addBuildFlags(serveCmd)
	serveCmd.Flags().Int("port", 0, "port for the preview server (overrides serve.port)")
	serveCmd.Flags().Bool("watch", false, "rebuild when source files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	applyBuildFlags(cmd, cfg)
	if cmd.Flags().Changed("port") {
		cfg.Serve.Port, _ = cmd.Flags().GetInt("port")
	}
	watch, _ := cmd.Flags().GetBool("watch")

	gen := newGenerator(cfg)
	if _, err := generate(gen); err != nil {
		return err
	}

	srv := site.NewPreviewServer(site.ServerConfig{
		Port:       cfg.Serve.Port,
		Dir:        filepath.Dir(cfg.OutputFile),
		LiveReload: cfg.Serve.LiveReload && watch,
	})

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		w := newRebuildWatcher(cfg, gen, srv)
		go func() {
			if err := w.Run(ctx); err != nil {
				zap.S().Errorf("watcher stopped: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down preview server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			zap.S().Errorf("shutting down preview server: %v", err)
		}
	}()

	fmt.Printf("Serving %s at http://localhost:%d/ (Ctrl+C to stop)\n", cfg.OutputFile, cfg.Serve.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving preview: %w", err)
	}
	return nil
}

// newRebuildWatcher returns a watcher that regenerates the page and reloads
// connected tabs. A failed rebuild is logged and the last good page stays up.
func newRebuildWatcher(cfg *config.Config, gen *site.Generator, srv *site.PreviewServer) *site.Watcher {
	var mu sync.Mutex
	patterns, files := watchTargets(cfg, ".")
	return &site.Watcher{
		Root:     ".",
		Patterns: patterns,
		Files:    files,
		Ignore:   []string{filepath.ToSlash(filepath.Clean(cfg.OutputFile))},
		OnChange: func(path string) {
			mu.Lock()
			defer mu.Unlock()

			n, err := gen.Generate()
			if err != nil {
				zap.S().Errorf("rebuild after %s failed: %v", path, err)
				return
			}
			tabs := srv.Reload()
			zap.S().Infof("rebuilt %s after change to %s (%d bytes, %d tabs reloaded)", cfg.OutputFile, path, n, tabs)
		},
	}
}

// watchTargets returns the configured patterns plus the content file, which
// may live outside the defaults. A content file inside root is added as a
// root-relative pattern; one outside root is returned in files so its
// directory gets watched.
// watchTargets adds the content file to the watch patterns. A content file
// outside root cannot be matched by a pattern and is watched directly.
func watchTargets(cfg *config.Config, root string) (patterns, files []string) {
	patterns = append([]string(nil), cfg.Serve.Watch...)

	rel, err := relativeTo(root, cfg.ContentFile)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return patterns, []string{cfg.ContentFile}
	}
	for _, p := range patterns {
		if p == rel {
			return patterns, nil
		}
	}
	return append(patterns, rel), nil
}

// relativeTo returns path relative to root in slash form.
func relativeTo(root, path string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
