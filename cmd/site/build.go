package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vedantk/website/internal/export"
	"github.com/vedantk/website/pkg/assets"
)

func buildCmd(dir *string) *cobra.Command {
	var (
		output      string
		baseURL     string
		clean       bool
		fingerprint bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site to static files",
		Long: `Export every page, the sitemap, the posts API and the static assets.

Each page is written to <route>/index.html so the export can be served
from any static host. Stylesheets and scripts are fingerprinted when
build.fingerprint is set.

Examples:
  site build
  site build --out=public --clean
  site build --base-url=https://staging.example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fp *bool
			if cmd.Flags().Changed("fingerprint") {
				fp = &fingerprint
			}
			_, err := runBuild(*dir, buildFlags{
				output:      output,
				baseURL:     baseURL,
				clean:       clean,
				fingerprint: fp,
				verbose:     verbose,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (default from site.json)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Origin for the sitemap and canonical links")
	cmd.Flags().BoolVar(&clean, "clean", true, "Remove the output directory first")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "Fingerprint CSS and JS (default from site.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every written file")

	return cmd
}

type buildFlags struct {
	output      string
	baseURL     string
	clean       bool
	fingerprint *bool
	verbose     bool
}

func runBuild(dir string, flags buildFlags) (*export.Result, error) {
	s, err := loadSite(dir)
	if err != nil {
		return nil, err
	}
	if flags.output != "" {
		s.cfg.Build.Output = flags.output
	}
	if flags.baseURL != "" {
		s.cfg.Site.BaseURL = flags.baseURL
	}
	if flags.fingerprint != nil {
		s.cfg.Build.Fingerprint = *flags.fingerprint
	}
	if s.cfg.Site.BaseURL == "" {
		warn("site.baseURL is empty; sitemap locations will be relative")
	}

	var opts appOptions
	var manifest *assets.Manifest
	if s.cfg.Build.Fingerprint {
		manifest, err = export.Plan(s.static)
		if err != nil {
			return nil, err
		}
		opts.assets = assets.NewResolver(manifest, s.cfg.Static.Prefix)
	}

	app, err := s.app(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := signalContext()
	defer cancel()

	info("Exporting to %s...", s.cfg.OutputPath())
	res, err := export.Run(ctx, app, export.Options{
		Output:       s.cfg.OutputPath(),
		Clean:        flags.clean,
		Static:       s.static,
		StaticPrefix: s.cfg.Static.Prefix,
		Manifest:     manifest,
		BaseURL:      s.cfg.Site.BaseURL,
		Logger:       s.logger,
		OnFile: func(f export.File) {
			if flags.verbose {
				info("%-48s %s", f.Path, humanize.Bytes(uint64(f.Size)))
			}
		},
	})
	if err != nil {
		return nil, err
	}

	fmt.Println()
	success("Exported %d pages and %d assets (%s) in %s",
		res.Pages, res.Assets, humanize.Bytes(uint64(res.Bytes)), res.Duration.Round(time.Millisecond))
	info("Output: %s", res.Output)
	return res, nil
}
