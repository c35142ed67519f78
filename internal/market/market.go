// Package market defines the livestock-market domain: the closed
// vocabularies for animals, market towns and demand levels, the price
// record, and the in-memory store that owns all records.
package market

import (
	"fmt"
	"strings"
	"time"
)

// Animal is a livestock type traded at the market hubs.
type Animal string

// Market is a market town in the coverage region.
type Market string

// Demand is the observed buyer demand for a record.
type Demand string

const (
	AnimalGoat   Animal = "Goat"
	AnimalCamel  Animal = "Camel"
	AnimalCattle Animal = "Cattle"
	AnimalSheep  Animal = "Sheep"

	MarketLodwar   Market = "Lodwar"
	MarketKakuma   Market = "Kakuma"
	MarketLokichar Market = "Lokichar"

	DemandHigh   Demand = "High"
	DemandMedium Demand = "Medium"
	DemandLow    Demand = "Low"
)

// Animals is the closed animal vocabulary in its declared enumeration
// order. Command interpretation scans this slice front to back, so the
// order is part of the observable behavior.
var Animals = []Animal{AnimalGoat, AnimalCamel, AnimalCattle, AnimalSheep}

// Markets is the closed market vocabulary, same ordering contract as Animals.
var Markets = []Market{MarketLodwar, MarketKakuma, MarketLokichar}

// DemandLevels lists all demand levels.
var DemandLevels = []Demand{DemandHigh, DemandMedium, DemandLow}

// DateLayout is the calendar-date format used everywhere a record date is
// rendered or parsed. Record dates carry no time component.
const DateLayout = "2006-01-02"

// Record is one observed price point: an animal at a market on a date,
// with the demand level seen that day.
type Record struct {
	ID     string    `json:"id" yaml:"id"`
	Date   time.Time `json:"date" yaml:"date"`
	Animal Animal    `json:"animal" yaml:"animal"`
	Market Market    `json:"market" yaml:"market"`
	Price  int       `json:"price" yaml:"price"`
	Demand Demand    `json:"demand" yaml:"demand"`

	// seq is assigned by the store at insert time and strictly increases.
	// It pins the tie-break when several records share a date: the higher
	// sequence (later insert) wins a "latest record" lookup.
	seq uint64
}

// RecordInput carries the caller-supplied fields for a new record; the
// store assigns the id.
type RecordInput struct {
	Date   time.Time
	Animal Animal
	Market Market
	Price  int
	Demand Demand
}

// ParseAnimal resolves a name to an Animal, case-insensitively.
func ParseAnimal(s string) (Animal, error) {
	for _, a := range Animals {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown animal %q", s)
}

// ParseMarket resolves a name to a Market, case-insensitively.
func ParseMarket(s string) (Market, error) {
	for _, m := range Markets {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown market %q", s)
}

// ParseDemand resolves a name to a Demand, case-insensitively.
func ParseDemand(s string) (Demand, error) {
	for _, d := range DemandLevels {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown demand level %q", s)
}
