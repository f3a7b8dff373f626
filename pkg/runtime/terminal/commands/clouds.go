package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bharathk2498/migrationgpt/pkg/adapters"
	"github.com/bharathk2498/migrationgpt/pkg/store/pricing"
)

type CloudsCmd struct {
	prices pricing.Store
}

func NewCloudsCmd(prices pricing.Store) *cobra.Command {
	cc := &CloudsCmd{prices: prices}
	return &cobra.Command{
		Use:   "clouds",
		Short: "List supported target clouds and their rate cards",
		RunE:  cc.run,
	}
}

func (cc *CloudsCmd) run(cmd *cobra.Command, _ []string) error {
	clouds := cc.prices.ListClouds()
	if len(clouds) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No target clouds configured")
		return nil
	}

	out := cmd.OutOrStdout()
	header := color.New(color.Bold)
	header.Fprintf(out, "%-8s %-8s %14s %14s %16s %14s\n",
		"CLOUD", "CURRENCY", "COMPUTE/HR", "DATABASE/HR", "STORAGE/MONTH", "OTHER/MONTH")
	for _, cloud := range clouds {
		card := cc.prices.GetRateCard(cmd.Context(), cloud)
		fmt.Fprintf(out, "%-8s %-8s %14s %14s %16s %14s\n",
			card.Cloud,
			card.Currency,
			adapters.FormatAmount(card.ComputeHourly),
			adapters.FormatAmount(card.DatabaseHourly),
			adapters.FormatAmount(card.StorageMonthly),
			adapters.FormatAmount(card.OtherMonthly))
	}
	return nil
}
