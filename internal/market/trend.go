package market

import "sort"

// TrendPoint is one chart sample: the price observed on a date.
type TrendPoint struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
}

// Latest returns the most recent record for the animal/market pair. When
// several records share the maximum date, the most recently added one
// wins. The second return is false when no record matches.
func Latest(records []Record, animal Animal, mkt Market) (Record, bool) {
	var best Record
	found := false
	for _, r := range records {
		if r.Animal != animal || r.Market != mkt {
			continue
		}
		if !found || r.Date.After(best.Date) || (r.Date.Equal(best.Date) && r.seq > best.seq) {
			best = r
			found = true
		}
	}
	return best, found
}

// SelectTrend filters records to the animal/market pair, sorts ascending
// by date, and keeps at most the last window entries, earliest first.
// Missing dates are not interpolated: the result holds exactly what
// exists, possibly fewer than window points.
func SelectTrend(records []Record, animal Animal, mkt Market, window int) []TrendPoint {
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Animal == animal && r.Market == mkt {
			matched = append(matched, r)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		// Insertion order keeps same-date points stable.
		return matched[i].seq < matched[j].seq
	})

	if window > 0 && len(matched) > window {
		matched = matched[len(matched)-window:]
	}

	points := make([]TrendPoint, len(matched))
	for i, r := range matched {
		points[i] = TrendPoint{Date: r.Date.Format(DateLayout), Price: r.Price}
	}
	return points
}
