package response

import "time"

// DateParts is the nested array form the API uses for dates, e.g.
// [[2019, 3, 12]] for a single day or [[2019], [2020]] for a range of years.
type DateParts [][]int

// DateKind tells how many dates a DateField holds.
type DateKind int

// Date field shapes.
const (
	DateSingle DateKind = iota + 1
	DateRange
	DateMulti
)

// DateField is the interpreted form of DateParts.
type DateField struct {
	Kind  DateKind
	Dates []time.Time
}

// From returns the first date of the field.
func (f DateField) From() time.Time {
	return f.Dates[0]
}

// To returns the last date of the field.
func (f DateField) To() time.Time {
	return f.Dates[len(f.Dates)-1]
}

// AsDate interprets the parts. Missing months and days default to the first.
// It returns false when the parts are empty or any entry is malformed.
func (d DateParts) AsDate() (DateField, bool) {
	if len(d) == 0 {
		return DateField{}, false
	}

	dates := make([]time.Time, 0, len(d))

	for _, parts := range d {
		t, ok := partsToTime(parts)
		if !ok {
			return DateField{}, false
		}

		dates = append(dates, t)
	}

	switch len(dates) {
	case 1:
		return DateField{Kind: DateSingle, Dates: dates}, true
	case 2:
		return DateField{Kind: DateRange, Dates: dates}, true
	default:
		return DateField{Kind: DateMulti, Dates: dates}, true
	}
}

func partsToTime(parts []int) (time.Time, bool) {
	year, month, day := 0, 1, 1

	switch len(parts) {
	case 3:
		day = parts[2]

		fallthrough
	case 2:
		month = parts[1]

		fallthrough
	case 1:
		year = parts[0]
	default:
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// Date is a fully specified timestamp as found in `indexed`, `created` and `deposited`.
type Date struct {
	DateParts DateParts `json:"date-parts" yaml:"date-parts"`
	DateTime  string    `json:"date-time"  yaml:"date-time"`
	Timestamp int64     `json:"timestamp"  yaml:"timestamp"`
}

// PartialDate is a date that may lack a month or day, as found in `issued`.
type PartialDate struct {
	DateParts DateParts `json:"date-parts" yaml:"date-parts"`
}
