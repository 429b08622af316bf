package scheduling

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Canonical slot parameters. Earlier iterations of the workflow disagreed
// on the window and the hour set; these values are the documented choice.
var (
	businessHours = []int{9, 10, 11, 14, 15, 16}
	slotMinutes   = []string{"00", "30"}
)

const (
	defaultSlotCount  = 3
	defaultWindowDays = 7
)

// Slot is one candidate appointment time. Date is "YYYY-MM-DD"; Time is
// "H:MM" with an unpadded hour, matching the booking ledger's exact-string
// comparison.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// SlotGenerator produces randomized candidate slots within a bounded
// future window. The clock and the draw function are injectable for
// tests.
type SlotGenerator struct {
	count      int
	windowDays int
	now        func() time.Time
	intn       func(n int) int
}

// NewSlotGenerator returns a generator with the canonical parameters.
func NewSlotGenerator() *SlotGenerator {
	return NewSlotGeneratorWith(defaultSlotCount, defaultWindowDays)
}

// NewSlotGeneratorWith returns a generator with a custom candidate count
// and window. Non-positive values fall back to the canonical parameters.
func NewSlotGeneratorWith(count, windowDays int) *SlotGenerator {
	if count <= 0 {
		count = defaultSlotCount
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return &SlotGenerator{
		count:      count,
		windowDays: windowDays,
		now:        time.Now,
		intn:       rand.IntN,
	}
}

// Candidates draws the candidate slots, each independently: a day offset
// in [1, windowDays], an hour from the business-hours set and a minute of
// "00" or "30". Candidates may repeat; the draw is not deduplicated.
func (g *SlotGenerator) Candidates() []Slot {
	today := g.now()
	slots := make([]Slot, 0, g.count)
	for i := 0; i < g.count; i++ {
		daysAhead := 1 + g.intn(g.windowDays)
		hour := businessHours[g.intn(len(businessHours))]
		minute := slotMinutes[g.intn(len(slotMinutes))]

		slots = append(slots, Slot{
			Date: today.AddDate(0, 0, daysAhead).Format("2006-01-02"),
			Time: fmt.Sprintf("%d:%s", hour, minute),
		})
	}
	return slots
}
