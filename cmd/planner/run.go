package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	response "laundry_dispatch/internal/adapter/http/dto/response"
	"laundry_dispatch/internal/adapter/persistence/repository"
	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/infrastructure/logging"
	"laundry_dispatch/internal/infrastructure/messaging"
	"laundry_dispatch/internal/usecase"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var dayFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a whole day: wash, dry, finish and invoices",
		Long: `Run a captured day through the three stages and price its orders.

The day file lists the date, the orders, the selection and the weighing and
triage records. A selected order without triage stops the run; when it was
weighed, the lines suggested from its collected items are printed so they can
be checked and copied into the day file.

Examples:
  planner run --catalog catalog.yaml --day day.yaml
  planner run --day day.yaml --tolerance 8 | jq '.summary'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planner, err := root.planner()
			if err != nil {
				return err
			}
			var in entities.DayInput
			if err := readInput(dayFile, &in); err != nil {
				return err
			}
			if err := validator.New().Struct(in); err != nil {
				return fmt.Errorf("invalid %s: %w", dayFile, err)
			}

			logger := logging.NewCLI(root.verbose)
			defer func() { _ = logger.Sync() }()
			publisher := messaging.NewLogPublisher(logger)
			workflow := usecase.NewWorkflowUseCase(repository.NewMemoryWorkflowRepository(), publisher, logger)
			runs := usecase.NewDailyRunUseCase(
				planner,
				repository.NewMemoryBatchRepository(),
				usecase.NewInvoiceUseCase(repository.NewMemoryInvoiceRepository(), logger),
				workflow,
				publisher,
				logger,
			)

			state, err := runs.Prepare(in)
			if err != nil {
				return err
			}
			out, err := runs.Run(cmd.Context(), state)
			if errors.Is(err, usecase.ErrOrderNotTriaged) && len(state.SuggestedTriage) > 0 {
				if werr := writeJSON(cmd.OutOrStdout(), map[string]any{
					"suggested_triage": response.FromSuggestedTriage(state),
				}); werr != nil {
					return werr
				}
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), response.FromDayRunOutcome(out))
		},
	}
	cmd.Flags().StringVar(&dayFile, "day", "", "day file (YAML)")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}
