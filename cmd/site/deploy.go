package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vedantk/website/internal/config"
	"github.com/vedantk/website/internal/deploy"
)

func deployCmd(dir *string) *cobra.Command {
	var (
		bucket  string
		prefix  string
		dryRun  bool
		noBuild bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Export the site and upload it to S3",
		Long: `Export the site and upload every file to the configured bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. Assets are uploaded before pages.

Examples:
  site deploy
  site deploy --dry-run
  site deploy --bucket=staging.example.com --prefix=preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(*dir, bucket, prefix, dryRun, noBuild, verbose)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket name (default from site.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from site.json)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List objects without uploading")
	cmd.Flags().BoolVar(&noBuild, "no-build", false, "Upload the existing export")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every object")

	return cmd
}

func runDeploy(dir, bucket, prefix string, dryRun, noBuild, verbose bool) error {
	cfg, _, err := config.LoadOptional(dir)
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Deploy.Bucket = bucket
	}
	if prefix != "" {
		cfg.Deploy.Prefix = prefix
	}
	if err := cfg.ValidateDeploy(); err != nil {
		return err
	}

	output := cfg.OutputPath()
	if !noBuild {
		res, err := runBuild(dir, buildFlags{clean: true})
		if err != nil {
			return err
		}
		output = res.Output
		fmt.Println()
	}

	var client deploy.Client
	if !dryRun {
		c, err := deploy.NewClient(cfg.Deploy, os.Getenv)
		if err != nil {
			return err
		}
		client = c
	}

	ctx, cancel := signalContext()
	defer cancel()

	info("Uploading %s to s3://%s/%s", output, cfg.Deploy.Bucket, cfg.Deploy.Prefix)
	res, err := deploy.Run(ctx, client, output, deploy.Options{
		Bucket: cfg.Deploy.Bucket,
		Prefix: cfg.Deploy.Prefix,
		DryRun: dryRun,
		OnUpload: func(o deploy.Object) {
			if verbose || dryRun {
				info("%-48s %-28s %s", o.Key, o.ContentType, humanize.Bytes(uint64(o.Size)))
			}
		},
	})
	if err != nil {
		return err
	}

	verb := "Uploaded"
	if dryRun {
		verb = "Would upload"
	}
	success("%s %d objects (%s) in %s", verb, len(res.Objects), humanize.Bytes(uint64(res.Bytes)), res.Duration.Round(time.Millisecond))
	return nil
}
