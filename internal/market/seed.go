package market

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// seedFile is the YAML shape of a seed-data file.
type seedFile struct {
	Records []seedEntry `yaml:"records"`
}

// seedEntry is one record in a seed file. The observation day is either
// an absolute date ("2025-08-30") or a days_ago offset from today; an
// omitted day means today.
type seedEntry struct {
	Animal  string `yaml:"animal"`
	Market  string `yaml:"market"`
	Price   int    `yaml:"price"`
	Demand  string `yaml:"demand"`
	Date    string `yaml:"date,omitempty"`
	DaysAgo *int   `yaml:"days_ago,omitempty"`
}

// DefaultSeed returns the built-in demo dataset: a week of Goat prices at
// Lodwar plus single observations for the other hubs, dated relative to
// today.
func DefaultSeed() []Record {
	today := Today()
	day := func(ago int) time.Time { return today.AddDate(0, 0, -ago) }

	return []Record{
		{Date: day(6), Animal: AnimalGoat, Market: MarketLodwar, Price: 5500, Demand: DemandMedium},
		{Date: day(5), Animal: AnimalGoat, Market: MarketLodwar, Price: 5600, Demand: DemandHigh},
		{Date: day(4), Animal: AnimalGoat, Market: MarketLodwar, Price: 5400, Demand: DemandMedium},
		{Date: day(3), Animal: AnimalGoat, Market: MarketLodwar, Price: 5800, Demand: DemandHigh},
		{Date: day(2), Animal: AnimalGoat, Market: MarketLodwar, Price: 6000, Demand: DemandHigh},
		{Date: day(1), Animal: AnimalGoat, Market: MarketLodwar, Price: 5900, Demand: DemandMedium},
		{Date: day(0), Animal: AnimalGoat, Market: MarketLodwar, Price: 6100, Demand: DemandHigh},

		{Date: day(0), Animal: AnimalCamel, Market: MarketKakuma, Price: 45000, Demand: DemandMedium},
		{Date: day(0), Animal: AnimalCattle, Market: MarketLokichar, Price: 25000, Demand: DemandLow},
		{Date: day(1), Animal: AnimalSheep, Market: MarketLodwar, Price: 4000, Demand: DemandMedium},
	}
}

// LoadSeedFile reads seed records from a YAML file. Unknown vocabulary
// values are an error rather than being skipped, so a typo in the data
// file surfaces at startup instead of as a silently missing record.
func LoadSeedFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed YAML into records.
func ParseSeed(data []byte) ([]Record, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	today := Today()
	records := make([]Record, 0, len(f.Records))
	for i, e := range f.Records {
		animal, err := ParseAnimal(e.Animal)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		mkt, err := ParseMarket(e.Market)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		demand, err := ParseDemand(e.Demand)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		if e.Price <= 0 {
			return nil, fmt.Errorf("seed record %d: price must be positive, got %d", i, e.Price)
		}

		date := today
		switch {
		case e.Date != "":
			date, err = time.Parse(DateLayout, e.Date)
			if err != nil {
				return nil, fmt.Errorf("seed record %d: %w", i, err)
			}
		case e.DaysAgo != nil:
			date = today.AddDate(0, 0, -*e.DaysAgo)
		}

		records = append(records, Record{
			Date:   date,
			Animal: animal,
			Market: mkt,
			Price:  e.Price,
			Demand: demand,
		})
	}
	return records, nil
}

// Today returns the current calendar date in UTC with the time component
// stripped, the canonical form for record dates.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
