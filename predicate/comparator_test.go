package predicate_test

import (
	"fmt"
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/hasbyte1/go-seq-utils/predicate"
	"github.com/hasbyte1/go-seq-utils/seqs"
)

// holiday has no natural order; its date does.
type holiday struct {
	date time.Time
}

func (h holiday) String() string { return h.date.Format("2006-01-02") }

func hol(y int, m time.Month, d int) holiday {
	return holiday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// 2018 US holidays, in calendar order.
var (
	newYears             = hol(2018, time.January, 1)
	memorialDay          = hol(2018, time.May, 28)
	independenceDay      = hol(2018, time.July, 4)
	laborDay             = hol(2018, time.September, 3)
	thanksgiving         = hol(2018, time.November, 22)
	dayAfterThanksgiving = hol(2018, time.November, 23)
	dayBeforeChristmas   = hol(2018, time.December, 24)
	christmas            = hol(2018, time.December, 25)
)

func allHolidays() iter.Seq[holiday] {
	return seqs.Of(newYears, memorialDay, independenceDay, laborDay,
		thanksgiving, dayAfterThanksgiving, dayBeforeChristmas, christmas)
}

func byDate() predicate.Ordering[holiday] {
	return predicate.ByOrdering(func(a, b holiday) int { return a.date.Compare(b.date) })
}

type birthday struct {
	name string
	born time.Time
}

func (b birthday) String() string { return fmt.Sprintf("%s: %s", b.name, b.born.Format("01/02")) }

var (
	john  = birthday{"John", time.Date(1954, time.November, 22, 0, 0, 0, 0, time.UTC)}
	alice = birthday{"Alice", time.Date(1973, time.May, 24, 0, 0, 0, 0, time.UTC)}
	jane  = birthday{"Jane", time.Date(1991, time.January, 12, 0, 0, 0, 0, time.UTC)}
	wanda = birthday{"Wanda", time.Date(1993, time.August, 11, 0, 0, 0, 0, time.UTC)}
)

// ─── ByOrdering ───────────────────────────────────────────────────────────────

func TestOrderingLessThan(t *testing.T) {
	got := seqs.Join(seqs.Filter(allHolidays(), byDate().LessThan(independenceDay)), ", ")
	if got != "2018-01-01, 2018-05-28" {
		t.Fatalf("holidays before July 4 = %q", got)
	}
}

func TestOrderingLessThanOrEqual(t *testing.T) {
	got := seqs.Join(seqs.Filter(allHolidays(), byDate().LessThanOrEqual(independenceDay)), ", ")
	if got != "2018-01-01, 2018-05-28, 2018-07-04" {
		t.Fatalf("holidays up to July 4 = %q", got)
	}
}

func TestOrderingGreaterThan(t *testing.T) {
	got := seqs.Join(seqs.Filter(allHolidays(), byDate().GreaterThan(independenceDay)), ", ")
	if got != "2018-09-03, 2018-11-22, 2018-11-23, 2018-12-24, 2018-12-25" {
		t.Fatalf("holidays after July 4 = %q", got)
	}
}

func TestOrderingGreaterThanOrEqual(t *testing.T) {
	got := seqs.Join(seqs.Filter(allHolidays(), byDate().GreaterThanOrEqual(independenceDay)), ", ")
	if got != "2018-07-04, 2018-09-03, 2018-11-22, 2018-11-23, 2018-12-24, 2018-12-25" {
		t.Fatalf("holidays from July 4 on = %q", got)
	}
}

func TestOrderingInRangeClosed(t *testing.T) {
	got := seqs.Join(seqs.Filter(allHolidays(), byDate().InRangeClosed(laborDay, christmas)), ", ")
	if got != "2018-09-03, 2018-11-22, 2018-11-23, 2018-12-24, 2018-12-25" {
		t.Fatalf("holidays in [Labor Day, Christmas] = %q", got)
	}
}

func TestOrderingInRangeOpen(t *testing.T) {
	got := seqs.Join(seqs.Filter(allHolidays(), byDate().InRangeOpen(laborDay, christmas)), ", ")
	if got != "2018-11-22, 2018-11-23, 2018-12-24" {
		t.Fatalf("holidays in (Labor Day, Christmas) = %q", got)
	}
}

func TestOrderingBeforeFirstElementIsEmpty(t *testing.T) {
	got := seqs.Count(seqs.Filter(allHolidays(), byDate().LessThan(newYears)))
	if got != 0 {
		t.Fatalf("holidays before New Year's = %d; want 0", got)
	}
}

func TestOrderingCaseInsensitive(t *testing.T) {
	caseInsensitive := predicate.ByOrdering(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	team := seqs.Of("Parker", "Winter", "Mukesh", "Jean", "Mackenzie", "Shannon", "Tatum", "Jane")
	got := seqs.Join(seqs.Filter(team, caseInsensitive.LessThanOrEqual("Parker")), ", ")
	if got != "Parker, Mukesh, Jean, Mackenzie, Jane" {
		t.Fatalf("names up to Parker = %q", got)
	}
}

// ─── Comparing / Natural ──────────────────────────────────────────────────────

func TestComparing(t *testing.T) {
	byBorn := predicate.Comparing(func(b birthday) int64 { return b.born.Unix() })
	people := seqs.Of(john, alice, jane, wanda)
	got := seqs.Join(seqs.Filter(people, byBorn.GreaterThan(alice)), ", ")
	if got != "Jane: 01/12, Wanda: 08/11" {
		t.Fatalf("born after Alice = %q", got)
	}
}

func TestNaturalAgreesWithPackageLevel(t *testing.T) {
	natural := predicate.Natural[string]().InRangeClosed("D", "N")
	direct := predicate.InRangeClosed("D", "N")
	for v := range letters() {
		if natural(v) != direct(v) {
			t.Fatalf("Natural and package-level disagree at %q", v)
		}
	}
}

// ─── Validation / interface ───────────────────────────────────────────────────

func TestOrderingInRangeClosedInvalidRange(t *testing.T) {
	assertInvalidRange(t, func() { byDate().InRangeClosed(christmas, laborDay) })
}

func TestOrderingBetweenInvalidRange(t *testing.T) {
	assertInvalidRange(t, func() { byDate().Between(christmas, laborDay) })
}

func TestOrderingSatisfiesBuilderInterface(t *testing.T) {
	var _ predicate.Builder[holiday, holiday] = byDate()
}
