package availability

import (
	"fmt"
	"time"

	"gearbook/models"
)

const dateLayout = "2006-01-02"

// Query carries the raw request parameters before validation.
type Query struct {
	Date       string
	StartDate  string
	EndDate    string
	CheckSlot  string
	MechanicID string
}

// ValidatedQuery is the typed result of validation; exactly one of the
// single-date or range forms is populated.
type ValidatedQuery struct {
	Date       string
	StartDate  string
	EndDate    string
	IsRange    bool
	HasCheck   bool
	CheckSlot  string
	Check      models.TimeInterval
	MechanicID string
}

// ValidateQuery enforces the request contract before any computation or
// store access: exactly one of {date} / {startDate,endDate}, checkSlot only
// with a single date, strict date and slot formats, and a bounded range
// span. Dates are interpreted in the business timezone.
func ValidateQuery(q Query, loc *time.Location, maxRangeDays int) (ValidatedQuery, error) {
	hasDate := q.Date != ""
	hasRange := q.StartDate != "" || q.EndDate != ""

	switch {
	case hasDate && hasRange:
		return ValidatedQuery{}, newParameterConflict("provide either date or startDate/endDate, not both")
	case !hasDate && !hasRange:
		return ValidatedQuery{}, newParameterConflict("provide either date or startDate/endDate")
	}

	if hasRange {
		if q.CheckSlot != "" {
			return ValidatedQuery{}, newUnsupportedCombination("checkSlot is only supported with a single date, not a date range")
		}
		if q.StartDate == "" || q.EndDate == "" {
			return ValidatedQuery{}, newParameterConflict("date range requires both startDate and endDate")
		}
		start, err := parseDate(q.StartDate, loc)
		if err != nil {
			return ValidatedQuery{}, err
		}
		end, err := parseDate(q.EndDate, loc)
		if err != nil {
			return ValidatedQuery{}, err
		}
		if end.Before(start) {
			return ValidatedQuery{}, newParameterConflict(fmt.Sprintf("startDate %q is after endDate %q", q.StartDate, q.EndDate))
		}
		if days := int(end.Sub(start).Hours()/24) + 1; days > maxRangeDays {
			return ValidatedQuery{}, newRangeTooWide(fmt.Sprintf("date range spans %d days, maximum is %d", days, maxRangeDays))
		}
		return ValidatedQuery{
			StartDate:  q.StartDate,
			EndDate:    q.EndDate,
			IsRange:    true,
			MechanicID: q.MechanicID,
		}, nil
	}

	if _, err := parseDate(q.Date, loc); err != nil {
		return ValidatedQuery{}, err
	}
	out := ValidatedQuery{Date: q.Date, MechanicID: q.MechanicID}
	if q.CheckSlot != "" {
		iv, err := models.ParseInterval(q.Date, q.CheckSlot)
		if err != nil {
			return ValidatedQuery{}, newMalformedInterval(err.Error())
		}
		out.HasCheck = true
		out.CheckSlot = q.CheckSlot
		out.Check = iv
	}
	return out, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, newMalformedDate(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return t, nil
}
