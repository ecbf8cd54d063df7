package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vedantk/website/internal/pages"
)

func routesCmd(dir *string) *cobra.Command {
	var paths bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List registered pages",
		Long: `List every registered page in registration order.

With --paths, dynamic pages also list the concrete paths they export.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(*dir, paths)
		},
	}

	cmd.Flags().BoolVar(&paths, "paths", false, "List the paths of dynamic pages")

	return cmd
}

func runRoutes(dir string, paths bool) error {
	s, err := loadSite(dir)
	if err != nil {
		return err
	}
	reg, err := pages.New(s.pagesSite(), pages.Deps{Library: s.library})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tTITLE\tNAV\tSITEMAP")
	for _, p := range reg.Pages() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Route, p.Title, yesNo(p.InNav), yesNo(p.InSitemap))
		if paths && p.Dynamic() {
			for _, params := range p.Paths() {
				fmt.Fprintf(tw, "  %s\t\t\t\n", p.Path(params))
			}
		}
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
