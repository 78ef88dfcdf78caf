package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vrgreentek/greentek-site/internal/projects/catalog"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

func newCatalogCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the embedded project catalog",
	}

	var typeFlag string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects := e.catalog.All()
			if typeFlag != "" {
				t, ok := domain.ParseType(typeFlag)
				if !ok {
					return fmt.Errorf("invalid --type %q (want green-energy or electrical)", typeFlag)
				}
				projects = e.catalog.ByType(t)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tSLUG\tTITLE\tLOCATION")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Type, p.Slug, p.Title, p.Location)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&typeFlag, "type", "", "Only list one track (green-energy|electrical)")

	check := &cobra.Command{
		Use:   "check",
		Short: "Validate catalog records and exit non-zero on defects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := e.catalog.Validate()
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d records\n", e.catalog.Len())
				return nil
			}

			var verr *catalog.ValidationError
			if errors.As(err, &verr) {
				for _, d := range verr.Defects {
					fmt.Fprintln(cmd.OutOrStdout(), d.String())
				}
				return fmt.Errorf("catalog has %d defect(s)", len(verr.Defects))
			}
			return err
		},
	}

	cmd.AddCommand(list, check)
	return cmd
}
