package main

import (
	"github.com/spf13/cobra"
)

func serveCmd(dir *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		Long: `Serve the site over HTTP.

Content is loaded once at startup. A missing site.json is not fatal: the
defaults serve ./content and the embedded static assets.

Examples:
  site serve
  site serve --port=3000
  site serve -C /srv/site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*dir, host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from site.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from site.json)")

	return cmd
}

func runServe(dir, host string, port int) error {
	s, err := loadSite(dir)
	if err != nil {
		return err
	}
	applyListenFlags(s, host, port)
	if !s.found {
		warn("No site.json in %s, using defaults", dir)
	}

	var opts appOptions
	if s.cfg.Metrics.Enabled {
		m, reg := newMetrics()
		opts.metrics, opts.gather = m, reg
	}
	app, err := s.app(opts)
	if err != nil {
		return err
	}

	success("Serving %d pages and %d posts at %s", app.Registry().Len(), s.library.Posts().Len(), s.cfg.URL())

	ctx, cancel := signalContext()
	defer cancel()
	return listen(ctx, s.cfg, app, s.logger)
}

func applyListenFlags(s *site, host string, port int) {
	if host != "" {
		s.cfg.Server.Host = host
	}
	if port > 0 {
		s.cfg.Server.Port = port
	}
}
