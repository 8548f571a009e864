package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laundry_dispatch/internal/infrastructure/catalog"
	"laundry_dispatch/internal/usecase"
)

type rootOptions struct {
	catalogFile string
	tolerance   float64
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Offline production planner for the laundry",
		Long: `Plan a production day from local files, without DynamoDB or NATS.

The catalog file describes linen types, aliases, machines and programs.
Results are printed as JSON on stdout; logs go to stderr.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", envDefault("CATALOG_FILE", "catalog.yaml"), "plant catalog (YAML)")
	cmd.PersistentFlags().Float64Var(&opts.tolerance, "tolerance", usecase.DefaultTolerancePercent, "triage weight tolerance in percent")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logs on stderr")

	cmd.AddCommand(newRunCmd(opts), newDispatchCmd(opts))
	return cmd
}

func (o *rootOptions) planner() (*usecase.DayPlanner, error) {
	plant, err := catalog.Load(o.catalogFile)
	if err != nil {
		return nil, err
	}
	if o.tolerance < 0 {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidTolerance, o.tolerance)
	}
	return usecase.NewDayPlanner(plant, usecase.WithTolerance(o.tolerance)), nil
}

// readInput decodes a YAML (or JSON) input file.
func readInput(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
