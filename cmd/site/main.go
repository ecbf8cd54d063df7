package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vedantk/website/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:   "site",
		Short: "Serve, build and deploy the personal website",
		Long: `site runs the personal website.

Pages are rendered from Go components, writings from markdown with YAML
frontmatter, and book highlights from a JSON export. The same binary serves
the site, watches it during development, exports it to static files and
uploads the export to S3.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Directory containing site.json")

	rootCmd.AddCommand(
		serveCmd(&dir),
		devCmd(&dir),
		buildCmd(&dir),
		deployCmd(&dir),
		routesCmd(&dir),
		versionCmd(),
	)
	return rootCmd
}

var term = termenv.NewOutput(os.Stdout)

func mark(symbol, color string) string {
	return term.String(symbol).Foreground(term.Color(color)).String()
}

func success(format string, args ...any) {
	fmt.Println(mark("✓", "2"), fmt.Sprintf(format, args...))
}

func info(format string, args ...any) {
	fmt.Println(" ", fmt.Sprintf(format, args...))
}

func warn(format string, args ...any) {
	fmt.Println(mark("⚠", "3"), fmt.Sprintf(format, args...))
}

// errorMsg writes to stderr.
func errorMsg(format string, args ...any) {
	fmt.Fprintln(os.Stderr, mark("✗", "1"), fmt.Sprintf(format, args...))
}
