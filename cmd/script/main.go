package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/cmd"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/spf13/cobra"
)

// one-shot analysis runner for poking at the engine without the API

func pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(bytes))
}

func main() {
	handler, _, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	var period string

	capmCmd := &cobra.Command{
		Use:   "capm [ticker]",
		Short: "Run a single-asset CAPM regression",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			result, err := handler.AnalysisHandler.CAPM(ctx, args[0], period)
			if err != nil {
				return err
			}
			pprint(result)
			return nil
		},
	}

	multifactorCmd := &cobra.Command{
		Use:   "multifactor [ticker]",
		Short: "Run a three-factor exposure regression",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			result, err := handler.AnalysisHandler.MultiFactor(ctx, args[0], period)
			if err != nil {
				return err
			}
			pprint(result)
			return nil
		},
	}

	var weights []float64
	portfolioCmd := &cobra.Command{
		Use:   "portfolio [ticker]...",
		Short: "Run CAPM on a weighted portfolio",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			result, err := handler.AnalysisHandler.PortfolioCAPM(ctx, domain.PortfolioSpec{
				Tickers: args,
				Weights: weights,
			})
			if err != nil {
				return err
			}
			pprint(result)
			return nil
		},
	}
	portfolioCmd.Flags().Float64SliceVar(&weights, "weights", nil, "percentage weights, parallel to tickers, summing to 100")

	rootCmd := &cobra.Command{Use: "analyzer"}
	rootCmd.PersistentFlags().StringVar(&period, "period", "2y", "lookback period (1mo, 3mo, 6mo, 1y, 2y, 5y)")
	rootCmd.AddCommand(capmCmd, multifactorCmd, portfolioCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
