package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lectrack/internal/bootstrap"
	"lectrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "lectrack",
		Short:         "Track lecture arrival, breaks and duration per group",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(dir)
		},
	}
	root.PersistentFlags().StringVar(&dir, "dir", ".", "data directory for lectrack.yaml, the database and exports")

	root.AddCommand(newTUICmd(&dir))
	root.AddCommand(newRecordsCmd(&dir))
	root.AddCommand(newConfigCmd(&dir))
	return root
}

func withApp(dir string, fn func(app *bootstrap.App) error) error {
	cfg, err := config.New(dir)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	runErr := fn(app)
	if err := app.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func runTUI(dir string) error {
	return withApp(dir, bootstrap.RunTUI)
}

func newTUICmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the lecture wizard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*dir)
		},
	}
}

func newRecordsCmd(dir *string) *cobra.Command {
	records := &cobra.Command{Use: "records", Short: "Inspect and export saved lectures"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved lectures in insertion order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dir, func(app *bootstrap.App) error {
				rows, err := app.RecordsCLI.ListAll(context.Background())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "GROUP\tARRIVED\tSTART\tBREAK START\tBREAK END\tEND\tBREAK\tLECTURE\tNOTES")
				for _, r := range rows {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						r.GroupCode, r.Arrived, r.Start, orNone(r.BreakStart), orNone(r.BreakEnd),
						r.LectureEnd, r.BreakDuration, r.LectureDuration, r.Notes)
				}
				return w.Flush()
			})
		},
	}

	var out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every saved lecture to a CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dir, func(app *bootstrap.App) error {
				res, err := app.RecordsCLI.Export(context.Background(), out)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s (%s)\n",
					res.Records, res.Path, humanize.Bytes(uint64(res.Bytes)))
				return nil
			})
		},
	}
	exportCmd.Flags().StringVar(&out, "out", "", "destination file (defaults to export_path from config)")

	records.AddCommand(listCmd, exportCmd)
	return records
}

func newConfigCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*dir)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
