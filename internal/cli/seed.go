package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ndewijer/TradeLog-Backend/internal/database"
	"github.com/ndewijer/TradeLog-Backend/internal/service"
)

func newSeedCmd() *cobra.Command {
	var printJSON bool

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with a sample set of strategies",
		Long: `Delete every trade and group, then create two sample strategies and one
ungrouped trade with expiries relative to today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := database.Migrate(cmd.Context(), a.db); err != nil {
				return err
			}

			s := a.stack()
			seeder := service.NewSeedService(a.db, s.tradeRepo, s.groupRepo, s.trades, s.groups, service.WithLogger(a.logger))

			summary, err := seeder.Seed(cmd.Context())
			if err != nil {
				a.logger.Error().Err(err).Msg("seeding failed")
				return err
			}

			a.logger.Info().
				Int("groups", len(summary.Groups)).
				Str("ungrouped_trade", summary.UngroupedTrade.ID).
				Msg("database seeded")

			if printJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return nil
		},
	}

	seedCmd.Flags().BoolVar(&printJSON, "json", false, "print the created data as JSON")

	return seedCmd
}
