package report

import (
	"net/url"
	"strconv"

	"github.com/mcastelo/palco/internal/dateutil"
)

// SelectionFromQuery reads the "year" and "period" query parameters.
// Year accepts a four-digit year or "all" (the default). Unknown period
// selectors behave as the full year.
func SelectionFromQuery(q url.Values) Selection {
	sel := Selection{Year: AllYears, Period: dateutil.PeriodYear}

	if y := q.Get("year"); y != "" && y != "all" {
		if n, err := strconv.Atoi(y); err == nil && n > 0 {
			sel.Year = n
		}
	}

	if p := q.Get("period"); p != "" {
		sel.Period = dateutil.Period(p)
	}

	return sel
}
