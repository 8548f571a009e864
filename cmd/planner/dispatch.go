package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	response "laundry_dispatch/internal/adapter/http/dto/response"
	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/infrastructure/logging"
	"laundry_dispatch/internal/usecase"
)

func newDispatchCmd(root *rootOptions) *cobra.Command {
	var (
		stageName string
		itemsFile string
	)
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Dispatch an item pool on a single stage",
		Long: `Pack an item pool into batches for one stage.

Examples:
  planner dispatch --stage wash --catalog catalog.yaml --items items.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stage, err := usecase.ParseStageType(stageName)
			if err != nil {
				return err
			}
			planner, err := root.planner()
			if err != nil {
				return err
			}
			var items []entities.LinenItem
			if err := readInput(itemsFile, &items); err != nil {
				return err
			}
			if err := validator.New().Var(items, "min=1,dive"); err != nil {
				return fmt.Errorf("invalid %s: %w", itemsFile, err)
			}

			logger := logging.NewCLI(root.verbose)
			defer func() { _ = logger.Sync() }()
			res, err := usecase.NewDispatchUseCase(planner, logger).Dispatch(cmd.Context(), stage, items)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), response.FromStageResult(res))
		},
	}
	cmd.Flags().StringVar(&stageName, "stage", "", "wash, dry or finish")
	cmd.Flags().StringVar(&itemsFile, "items", "", "item pool file (YAML list)")
	_ = cmd.MarkFlagRequired("stage")
	_ = cmd.MarkFlagRequired("items")
	return cmd
}
