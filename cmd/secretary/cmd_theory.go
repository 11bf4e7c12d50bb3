package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"secretary-lab/internal/domain"
	"secretary-lab/internal/metrics"
	"secretary-lab/internal/theory"
)

func newTheoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theory",
		Short: "Print the closed-form win probability of the best-candidate rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, n := range domain.DefaultCandidateCounts {
				p, err := theory.ClassicWinProbability(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "n=%d theoretical win probability %s\n", n, roundProbability(p))
			}
			fmt.Fprintf(out, "limit 1/e = %s\n", roundProbability(theory.AsymptoticWinProbability))

			return nil
		},
	}
}

func roundProbability(p float64) string {
	return decimal.NewFromFloat(p).Round(metrics.WinRatePlaces).String()
}
