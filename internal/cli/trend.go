package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/etabo/mifugo-connect/internal/market"
	"github.com/etabo/mifugo-connect/internal/query"
)

var (
	trendAnimal string
	trendMarket string
	trendWindow int
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the price trend for an animal at a market",
	Long: `Show the recent price trend for an animal/market pair, earliest first.

Only dates with an actual observation appear; gaps are not filled.

Examples:
  mifugo trend
  mifugo trend --animal Camel --market Kakuma
  mifugo trend -a Sheep -m Lodwar -w 14`,
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().StringVarP(&trendAnimal, "animal", "a", "Goat", "livestock type")
	trendCmd.Flags().StringVarP(&trendMarket, "market", "m", "Lodwar", "market hub")
	trendCmd.Flags().IntVarP(&trendWindow, "window", "w", 7, "max trend points")
}

func runTrend(cmd *cobra.Command, args []string) error {
	animal, err := market.ParseAnimal(trendAnimal)
	if err != nil {
		return err
	}
	mkt, err := market.ParseMarket(trendMarket)
	if err != nil {
		return err
	}

	points := market.SelectTrend(store.List(), animal, mkt, trendWindow)
	if len(points) == 0 {
		fmt.Printf("No data for %s at %s.\n", animal, mkt)
		return nil
	}

	fmt.Printf("%s price trend at %s (last %d entries):\n", animal, mkt, trendWindow)
	for _, p := range points {
		fmt.Printf("  %s  KES %s\n", p.Date, query.FormatPrice(p.Price))
	}
	return nil
}
