package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vedantk/website/internal/dev"
)

func devCmd(dir *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Serve the site with live reload",
		Long: `Serve the site and reload browsers when content or assets change.

Writings, the books file and the static directory are polled. Post and
book changes reload the content in place; a post that fails to parse keeps
the previous content and shows the error in the browser.

Examples:
  site dev
  site dev --port=3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(*dir, host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from site.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from site.json)")

	return cmd
}

func runDev(dir, host string, port int) error {
	s, err := loadSite(dir)
	if err != nil {
		return err
	}
	applyListenFlags(s, host, port)

	// Prefer the on-disk web/static over the embedded copy.
	if s.cfg.Static.Dir == "" {
		local := filepath.Join(s.cfg.Dir(), "web", "static")
		if info, err := os.Stat(local); err == nil && info.IsDir() {
			s.cfg.Static.Dir = local
			s.static = os.DirFS(local)
		}
	}

	interval, err := s.cfg.DevInterval()
	if err != nil {
		return err
	}

	m, reg := newMetrics()
	opts := appOptions{metrics: m, gather: reg}

	var session *dev.Session
	if s.cfg.Dev.LiveReload {
		session = dev.NewSession(dev.SessionConfig{
			Library: s.library,
			Metrics: m,
			Logger:  s.logger,
		})
		opts.scripts = session.Scripts()
		opts.routes = session.Routes()
	}

	app, err := s.app(opts)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if session != nil {
		paths := dev.CollectWatchPaths(s.cfg)
		watcher := dev.NewWatcher(dev.WatcherConfig{Paths: paths, Interval: interval, Poll: s.cfg.Dev.Poll})
		go func() {
			if err := session.Run(ctx, watcher); err != nil {
				errorMsg("Watcher stopped: %v", err)
			}
		}()
		for _, p := range paths {
			info("Watching %s", p)
		}
	} else {
		warn("Live reload disabled (dev.liveReload=false)")
	}

	success("Dev server at %s", s.cfg.URL())
	return listen(ctx, s.cfg, app, s.logger)
}
