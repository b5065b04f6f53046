package services

import (
	"math"
	"time"
)

// window is a closed date interval aggregates are computed over.
// Previous-period windows are half-open on the right (counted with a
// strict upper bound) to match the growth comparison semantics.
type window struct {
	From time.Time
	To   time.Time
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return dateOf(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// resolveDashboardWindow picks the dashboard stats window. Explicit
// bounds win over the preset; reversed bounds are swapped and the end
// date extended to the end of its calendar day so it stays inclusive.
// Presets: "7" last 7 days, "all" everything, "30" (default) last 30.
func resolveDashboardWindow(preset string, fromDate, toDate *time.Time, now time.Time) window {
	if fromDate != nil && toDate != nil {
		from, to := *fromDate, *toDate
		if to.Before(from) {
			from, to = to, from
		}
		return window{From: dateOf(from), To: endOfDay(to)}
	}

	switch preset {
	case "7":
		return window{From: dateOf(now).AddDate(0, 0, -6), To: now}
	case "all":
		return window{From: time.Time{}, To: now}
	default:
		return window{From: dateOf(now).AddDate(0, 0, -29), To: now}
	}
}

// resolveInteractionWindow returns the primary window and the
// equal-length comparison window immediately preceding it. The "-1"
// preset ("all time") is a 365-day lookback on purpose, not a true
// unbounded window.
func resolveInteractionWindow(preset string, fromDate, toDate *time.Time, now time.Time) (window, window) {
	var w window
	if fromDate != nil && toDate != nil {
		from, to := *fromDate, *toDate
		if to.Before(from) {
			from, to = to, from
		}
		w = window{From: dateOf(from), To: endOfDay(to)}
	} else {
		days := 30
		switch preset {
		case "7":
			days = 7
		case "-1":
			days = 365
		}
		w = window{From: now.AddDate(0, 0, -days), To: now}
	}
	return w, previousWindow(w)
}

func previousWindow(w window) window {
	days := int(w.To.Sub(w.From).Hours() / 24)
	return window{
		From: w.From.AddDate(0, 0, -days),
		To:   w.From.Add(-time.Nanosecond),
	}
}

// growth computes a period-over-period percentage, rounded half to
// even at one decimal. An empty previous period counts as +100%,
// never infinity.
func growth(previous, current int64) float64 {
	if previous == 0 {
		return 100
	}
	return math.RoundToEven(float64(current-previous)/float64(previous)*1000) / 10
}

// bucket is one time slice of an interaction series; events belong to
// it over the half-open interval [Start, End).
type bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// buildBuckets slices the window by span length: daily up to 31 days,
// weekly (Monday-aligned) up to 90 days, monthly beyond that.
func buildBuckets(from, to time.Time) []bucket {
	totalDays := int(to.Sub(from).Hours() / 24)
	var buckets []bucket

	switch {
	case totalDays <= 31:
		last := dateOf(to)
		for d := dateOf(from); !d.After(last); d = d.AddDate(0, 0, 1) {
			buckets = append(buckets, bucket{
				Label: d.Format("02/01"),
				Start: d,
				End:   d.AddDate(0, 0, 1),
			})
		}
	case totalDays <= 90:
		for w := mondayOnOrBefore(dateOf(from)); !w.After(to); w = w.AddDate(0, 0, 7) {
			buckets = append(buckets, bucket{
				Label: w.Format("02/01") + " - " + w.AddDate(0, 0, 6).Format("02/01"),
				Start: w,
				End:   w.AddDate(0, 0, 7),
			})
		}
	default:
		start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
		for m := start; !m.After(to); m = m.AddDate(0, 1, 0) {
			buckets = append(buckets, bucket{
				Label: m.Format("01/2006"),
				Start: m,
				End:   m.AddDate(0, 1, 0),
			})
		}
	}
	return buckets
}

func mondayOnOrBefore(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// countByBucket tallies event timestamps into buckets; an event at a
// bucket's End belongs to the next bucket.
func countByBucket(buckets []bucket, events []time.Time) []int {
	counts := make([]int, len(buckets))
	for _, ts := range events {
		for i := range buckets {
			if !ts.Before(buckets[i].Start) && ts.Before(buckets[i].End) {
				counts[i]++
				break
			}
		}
	}
	return counts
}

// distribution converts the three category counts into percentages of
// their combined total, dropping empty categories. Rounding is half to
// even so the shares never add up past 100. A zero total yields no
// distribution at all.
func distribution(labels [3]string, counts [3]int64) ([]string, []int) {
	var total int64
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return nil, nil
	}

	var outLabels []string
	var outData []int
	for i, n := range counts {
		if n > 0 {
			outLabels = append(outLabels, labels[i])
			outData = append(outData, int(math.RoundToEven(float64(n)*100/float64(total))))
		}
	}
	return outLabels, outData
}
