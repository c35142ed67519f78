package market

import "testing"

func TestParseAnimal(t *testing.T) {
	tests := []struct {
		in      string
		want    Animal
		wantErr bool
	}{
		{"Goat", AnimalGoat, false},
		{"goat", AnimalGoat, false},
		{"CAMEL", AnimalCamel, false},
		{"cattle", AnimalCattle, false},
		{"Sheep", AnimalSheep, false},
		{"donkey", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnimal(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnimal(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAnimal(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMarket(t *testing.T) {
	tests := []struct {
		in      string
		want    Market
		wantErr bool
	}{
		{"Lodwar", MarketLodwar, false},
		{"KAKUMA", MarketKakuma, false},
		{"lokichar", MarketLokichar, false},
		{"Nairobi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMarket(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMarket(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMarket(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDemand(t *testing.T) {
	tests := []struct {
		in      string
		want    Demand
		wantErr bool
	}{
		{"High", DemandHigh, false},
		{"medium", DemandMedium, false},
		{"LOW", DemandLow, false},
		{"extreme", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDemand(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDemand(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDemand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVocabularyOrder(t *testing.T) {
	// The declared enumeration order is observable: command matching
	// scans front to back and the first containment wins.
	wantAnimals := []Animal{AnimalGoat, AnimalCamel, AnimalCattle, AnimalSheep}
	for i, a := range Animals {
		if a != wantAnimals[i] {
			t.Fatalf("Animals[%d] = %q, want %q", i, a, wantAnimals[i])
		}
	}

	wantMarkets := []Market{MarketLodwar, MarketKakuma, MarketLokichar}
	for i, m := range Markets {
		if m != wantMarkets[i] {
			t.Fatalf("Markets[%d] = %q, want %q", i, m, wantMarkets[i])
		}
	}
}
