package market

import (
	"testing"
)

func goatLodwar(t *testing.T, s *Store, date string, price int) Record {
	t.Helper()
	return s.Add(RecordInput{Date: day(t, date), Animal: AnimalGoat, Market: MarketLodwar, Price: price, Demand: DemandMedium})
}

func TestLatestPicksMaximumDate(t *testing.T) {
	s := NewStore()
	goatLodwar(t, s, "2025-08-25", 5500)
	goatLodwar(t, s, "2025-08-28", 6100)
	goatLodwar(t, s, "2025-08-26", 5400)
	s.Add(RecordInput{Date: day(t, "2025-08-29"), Animal: AnimalCamel, Market: MarketKakuma, Price: 45000, Demand: DemandHigh})

	got, ok := Latest(s.List(), AnimalGoat, MarketLodwar)
	if !ok {
		t.Fatal("Latest found nothing")
	}
	if got.Price != 6100 {
		t.Errorf("Latest price = %d, want 6100", got.Price)
	}
}

func TestLatestTieBreaksOnMostRecentlyAdded(t *testing.T) {
	s := NewStore()
	first := goatLodwar(t, s, "2025-08-28", 6000)
	second := goatLodwar(t, s, "2025-08-28", 6200)

	// Stable across repeated lookups: the later write wins.
	for i := 0; i < 10; i++ {
		got, ok := Latest(s.List(), AnimalGoat, MarketLodwar)
		if !ok {
			t.Fatal("Latest found nothing")
		}
		if got.ID != second.ID {
			t.Fatalf("Latest returned %q (price %d), want later-added %q; earlier was %q",
				got.ID, got.Price, second.ID, first.ID)
		}
	}
}

func TestLatestNoMatch(t *testing.T) {
	s := NewStore()
	goatLodwar(t, s, "2025-08-28", 6000)

	if _, ok := Latest(s.List(), AnimalCamel, MarketLokichar); ok {
		t.Error("Latest reported a match for a pair with no records")
	}
}

func TestSelectTrendWindowsAndSorts(t *testing.T) {
	s := NewStore()
	// Inserted out of order on purpose.
	goatLodwar(t, s, "2025-08-27", 5800)
	goatLodwar(t, s, "2025-08-24", 5500)
	goatLodwar(t, s, "2025-08-29", 5900)
	goatLodwar(t, s, "2025-08-25", 5600)
	goatLodwar(t, s, "2025-08-28", 6000)
	goatLodwar(t, s, "2025-08-26", 5400)
	goatLodwar(t, s, "2025-08-30", 6100)
	goatLodwar(t, s, "2025-08-23", 5300)

	points := SelectTrend(s.List(), AnimalGoat, MarketLodwar, 7)

	if len(points) != 7 {
		t.Fatalf("got %d points, want 7", len(points))
	}
	// Oldest entry (08-23) fell out of the window; remainder ascend.
	wantDates := []string{"2025-08-24", "2025-08-25", "2025-08-26", "2025-08-27", "2025-08-28", "2025-08-29", "2025-08-30"}
	wantPrices := []int{5500, 5600, 5400, 5800, 6000, 5900, 6100}
	for i, p := range points {
		if p.Date != wantDates[i] || p.Price != wantPrices[i] {
			t.Errorf("point %d = %s/%d, want %s/%d", i, p.Date, p.Price, wantDates[i], wantPrices[i])
		}
	}
}

func TestSelectTrendFewerThanWindow(t *testing.T) {
	s := NewStore()
	goatLodwar(t, s, "2025-08-29", 5900)
	goatLodwar(t, s, "2025-08-30", 6100)

	points := SelectTrend(s.List(), AnimalGoat, MarketLodwar, 7)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (no gap filling)", len(points))
	}
	if points[0].Date != "2025-08-29" || points[1].Date != "2025-08-30" {
		t.Errorf("points not in ascending date order: %+v", points)
	}
}

func TestSelectTrendFiltersPair(t *testing.T) {
	s := NewStore()
	goatLodwar(t, s, "2025-08-30", 6100)
	s.Add(RecordInput{Date: day(t, "2025-08-30"), Animal: AnimalGoat, Market: MarketKakuma, Price: 5000, Demand: DemandLow})
	s.Add(RecordInput{Date: day(t, "2025-08-30"), Animal: AnimalSheep, Market: MarketLodwar, Price: 4000, Demand: DemandLow})

	points := SelectTrend(s.List(), AnimalGoat, MarketLodwar, 7)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].Price != 6100 {
		t.Errorf("wrong record selected: %+v", points[0])
	}
}
