package usecases

import (
	"time"

	"homezy-service/internal/module/calendar/models/entity"
	"homezy-service/internal/pkg/helpers"
)

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Aggregate builds the month view for year/month in one pass over bookings.
// A stay occupies every calendar day from check-in through check-out
// inclusive, clipped to the displayed month; its revenue lands on the
// check-in day only. A booking without a date is left out of every map that
// date feeds.
func Aggregate(bookings []entity.Booking, year int, month time.Month, withdrawn float64) entity.Calendar {
	cal := entity.Calendar{
		Year:      year,
		Month:     month,
		Occupancy: map[string][]entity.Booking{},
		CheckIns:  map[string]int{},
		CheckOuts: map[string]int{},
		Revenue:   map[string]float64{},
		Withdrawn: withdrawn,
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := first.AddDate(0, 1, -1)

	for _, b := range bookings {
		if b.CheckIn.Valid {
			key := helpers.DayKey(b.CheckIn.Time)
			cal.CheckIns[key]++
			cal.Revenue[key] += b.Amount()

			in := day(b.CheckIn.Time)
			if in.Year() == year && in.Month() == month {
				cal.RawRevenue += b.Amount()
			}
		}
		if b.CheckOut.Valid {
			cal.CheckOuts[helpers.DayKey(b.CheckOut.Time)]++
		}
		if !b.CheckIn.Valid || !b.CheckOut.Valid {
			continue
		}

		start, last := day(b.CheckIn.Time), day(b.CheckOut.Time)
		if start.Before(first) {
			start = first
		}
		if last.After(end) {
			last = end
		}
		for d := start; !d.After(last); d = d.AddDate(0, 0, 1) {
			key := helpers.DayKey(d)
			cal.Occupancy[key] = append(cal.Occupancy[key], b)
		}
	}

	cal.MonthRevenue = cal.RawRevenue - withdrawn
	if cal.MonthRevenue < 0 {
		cal.MonthRevenue = 0
	}
	return cal
}

// DaysIn returns the day keys of year/month in order.
func DaysIn(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var keys []string
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		keys = append(keys, helpers.DayKey(d))
	}
	return keys
}
