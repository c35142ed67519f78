package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/etabo/mifugo-connect/internal/market"
	"github.com/etabo/mifugo-connect/internal/query"
)

var (
	recordAnimal string
	recordMarket string
	recordPrice  int
	recordDemand string
	recordDate   string

	recordsLimit int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage market price records",
	Long: `Manage the market price records held for this session.

Subcommands:
  list    Show records, most recent first (default)
  add     Log a new price observation
  update  Replace a record by id
  delete  Remove a record by id

Examples:
  mifugo records
  mifugo records add --animal Goat --market Lodwar --price 6100 --demand High
  mifugo records update 4f6b... --animal Goat --market Lodwar --price 6200 --demand High
  mifugo records delete 4f6b...`,
	RunE: runRecordsList,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records, most recent first",
	RunE:  runRecordsList,
}

var recordsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new price observation",
	RunE:  runRecordsAdd,
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a record by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsUpdate,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a record by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{recordsAddCmd, recordsUpdateCmd} {
		cmd.Flags().StringVarP(&recordAnimal, "animal", "a", "", "livestock type (Goat, Camel, Cattle, Sheep)")
		cmd.Flags().StringVarP(&recordMarket, "market", "m", "", "market hub (Lodwar, Kakuma, Lokichar)")
		cmd.Flags().IntVarP(&recordPrice, "price", "p", 0, "price in KES")
		cmd.Flags().StringVarP(&recordDemand, "demand", "d", "Medium", "demand level (High, Medium, Low)")
		cmd.Flags().StringVar(&recordDate, "date", "", "observation date (YYYY-MM-DD, default today)")
	}

	recordsListCmd.Flags().IntVarP(&recordsLimit, "limit", "n", 10, "max records shown")
	recordsCmd.Flags().IntVarP(&recordsLimit, "limit", "n", 10, "max records shown")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsAddCmd)
	recordsCmd.AddCommand(recordsUpdateCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	records := store.List()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	if recordsLimit > 0 && len(records) > recordsLimit {
		records = records[:recordsLimit]
	}

	if len(records) == 0 {
		fmt.Println("No records.")
		return nil
	}

	fmt.Printf("%-10s  %-8s  %-9s  %10s  %-6s  %s\n", "DATE", "ANIMAL", "MARKET", "PRICE", "DEMAND", "ID")
	for _, r := range records {
		fmt.Printf("%-10s  %-8s  %-9s  %10s  %-6s  %s\n",
			r.Date.Format(market.DateLayout), r.Animal, r.Market,
			query.FormatPrice(r.Price), r.Demand, r.ID)
	}
	return nil
}

func runRecordsAdd(cmd *cobra.Command, args []string) error {
	in, err := recordInputFromFlags()
	if err != nil {
		return err
	}

	r := store.Add(in)
	logger.Info("record added", "id", r.ID, "animal", r.Animal, "market", r.Market, "price", r.Price)
	fmt.Printf("Added %s %s/%s KES %s (%s)\n",
		r.Date.Format(market.DateLayout), r.Animal, r.Market, query.FormatPrice(r.Price), r.ID)
	return nil
}

func runRecordsUpdate(cmd *cobra.Command, args []string) error {
	in, err := recordInputFromFlags()
	if err != nil {
		return err
	}

	// Full-record replace; an unknown id is silently absorbed by the
	// store, so confirm against List for operator feedback.
	store.Update(market.Record{
		ID:     args[0],
		Date:   in.Date,
		Animal: in.Animal,
		Market: in.Market,
		Price:  in.Price,
		Demand: in.Demand,
	})

	for _, r := range store.List() {
		if r.ID == args[0] {
			fmt.Printf("Updated %s\n", r.ID)
			return nil
		}
	}
	fmt.Printf("No record with id %s; nothing changed.\n", args[0])
	return nil
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	store.Delete(args[0])
	fmt.Printf("Deleted %s (if it existed).\n", args[0])
	return nil
}

// recordInputFromFlags validates the surface-level constraints (the store
// itself does not re-validate) and builds a RecordInput.
func recordInputFromFlags() (market.RecordInput, error) {
	var in market.RecordInput

	animal, err := market.ParseAnimal(recordAnimal)
	if err != nil {
		return in, err
	}
	mkt, err := market.ParseMarket(recordMarket)
	if err != nil {
		return in, err
	}
	demand, err := market.ParseDemand(recordDemand)
	if err != nil {
		return in, err
	}
	if recordPrice <= 0 {
		return in, fmt.Errorf("price must be a positive amount, got %d", recordPrice)
	}

	date := market.Today()
	if recordDate != "" {
		date, err = time.Parse(market.DateLayout, recordDate)
		if err != nil {
			return in, fmt.Errorf("parse date: %w", err)
		}
	}

	in = market.RecordInput{
		Date:   date,
		Animal: animal,
		Market: mkt,
		Price:  recordPrice,
		Demand: demand,
	}
	return in, nil
}
