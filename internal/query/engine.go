// Package query implements the command interpreter behind the SMS
// simulator: free-form text in, a price report or fallback prompt out.
package query

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/etabo/mifugo-connect/internal/market"
)

// DroughtAdvisory is the fixed alert returned for any message that
// mentions drought, regardless of whatever else the message contains.
const DroughtAdvisory = "⚠️ WARNING: Surface water levels critical in Kibish & Turkana North. " +
	"Pasture condition: POOR. Rec: Sell mature stock now. Buy hay."

// InvalidCommand is the fallback when no vocabulary word matches.
const InvalidCommand = "Invalid command. Try 'GOAT LODWAR' or 'DROUGHT'."

// prices grouped for feature-phone readability: "KES 45,000".
var kes = message.NewPrinter(language.English)

// Respond interprets one user message against a snapshot of market
// records and returns the reply text.
//
// Matching is deliberately loose: the closed animal and market
// vocabularies are scanned for substring containment in the upper-cased
// input, first match in declared order wins. No tokenization happens, so
// "GOATLODWAR" matches both words and a vocabulary name embedded inside
// an unrelated word is a false positive. That is the behavior pastoralists
// see today and it is preserved as-is.
func Respond(records []market.Record, text string) string {
	clean := strings.ToUpper(strings.TrimSpace(text))

	if strings.Contains(clean, "DROUGHT") {
		return DroughtAdvisory
	}

	animal, animalFound := findAnimal(clean)
	mkt, marketFound := findMarket(clean)

	switch {
	case animalFound && marketFound:
		return priceReport(records, animal, mkt)
	case animalFound:
		return fmt.Sprintf("Please specify a market for %s. Example: \"%s LODWAR\"",
			animal, strings.ToUpper(string(animal)))
	case marketFound:
		return fmt.Sprintf("Please specify an animal for %s. Example: \"GOAT %s\"",
			mkt, strings.ToUpper(string(mkt)))
	default:
		return InvalidCommand
	}
}

func priceReport(records []market.Record, animal market.Animal, mkt market.Market) string {
	latest, ok := market.Latest(records, animal, mkt)
	if !ok {
		return fmt.Sprintf("No recent data found for %s in %s.", animal, mkt)
	}
	return fmt.Sprintf("%s at %s is KES %s. Demand: %s. Date: %s",
		latest.Animal,
		latest.Market,
		FormatPrice(latest.Price),
		strings.ToUpper(string(latest.Demand)),
		latest.Date.Format(market.DateLayout))
}

// FormatPrice renders a KES amount with thousands separators.
func FormatPrice(price int) string {
	return kes.Sprintf("%d", price)
}

func findAnimal(clean string) (market.Animal, bool) {
	for _, a := range market.Animals {
		if strings.Contains(clean, strings.ToUpper(string(a))) {
			return a, true
		}
	}
	return "", false
}

func findMarket(clean string) (market.Market, bool) {
	for _, m := range market.Markets {
		if strings.Contains(clean, strings.ToUpper(string(m))) {
			return m, true
		}
	}
	return "", false
}
