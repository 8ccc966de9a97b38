package utils

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindNumeric
	KindText
)

// Value is a cell normalized for comparison.
type Value struct {
	Kind ValueKind
	Num  decimal.Decimal
	// Text is the trimmed cell text; for numerics it is the text with
	// percent signs removed.
	Text string
}

// NumericTolerance is the largest absolute difference still treated as equal.
var NumericTolerance = decimal.New(1, -6)

// missingLiteral is what a stringified missing value looks like in exports.
const missingLiteral = "nan"

// IsEmptyLike reports whether a raw cell counts as empty: absent, blank, or
// the literal "nan".
func IsEmptyLike(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == missingLiteral
}

// NormalizeNumeric converts a raw cell into a Value. Percent signs are
// stripped but the number is not divided by 100, so "5%" equals "5".
// Text that does not parse as a decimal is kept as trimmed text.
func NormalizeNumeric(raw string) Value {
	if IsEmptyLike(raw) {
		return Value{Kind: KindEmpty}
	}
	trimmed := strings.TrimSpace(raw)
	stripped := strings.TrimSpace(strings.ReplaceAll(trimmed, "%", ""))
	if stripped != "" {
		if d, err := decimal.NewFromString(stripped); err == nil {
			return Value{Kind: KindNumeric, Num: d, Text: stripped}
		}
	}
	return Value{Kind: KindText, Text: trimmed}
}

// Equal compares two normalized values: numerics within NumericTolerance,
// everything else by exact text.
func (v Value) Equal(o Value) bool {
	if v.Kind == KindNumeric && o.Kind == KindNumeric {
		return v.Num.Sub(o.Num).Abs().LessThanOrEqual(NumericTolerance)
	}
	return v.Text == o.Text
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2T15:04:05",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
	"2006.1.2",
	"2006年1月2日 15:04:05",
	"2006年1月2日 15:04",
	"2006年1月2日",
	"20060102",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// maxExcelSerial is 9999-12-31 in the 1900 date system.
const maxExcelSerial = 2958465

// Date1904Offset is the number of days between the 1900 and 1904 date
// systems: a 1904-system serial plus this offset is the 1900-system serial.
const Date1904Offset = 1462

// DateCell is a raw cell together with the date system of the workbook it
// was read from, which decides how a serial day number is interpreted.
type DateCell struct {
	Raw      string
	Date1904 bool
}

func parseDateText(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseSerial(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v <= 0 || v > maxExcelSerial {
		return 0, false
	}
	return v, true
}

// ExcelSerial reports whether raw is an Excel serial day number. Text that
// reads as a calendar date, such as the compact 20240105, is not a serial.
func ExcelSerial(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if _, ok := parseDateText(s); ok {
		return 0, false
	}
	return parseSerial(s)
}

// ParseDate parses the textual forms dates take in exported ledgers, and
// Excel serial day numbers (the raw form of a date-formatted cell) in the
// 1900 date system.
func ParseDate(raw string) (time.Time, bool) {
	return ParseDateCell(DateCell{Raw: raw})
}

// ParseDateCell is ParseDate honouring the cell's workbook date system.
func ParseDateCell(c DateCell) (time.Time, bool) {
	s := strings.TrimSpace(c.Raw)
	if IsEmptyLike(s) {
		return time.Time{}, false
	}
	if t, ok := parseDateText(s); ok {
		return t, true
	}
	serial, ok := parseSerial(s)
	if !ok {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, c.Date1904)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SameCalendarDay reports whether a and b fall on the same year, month and
// day. Time of day is ignored; if either side fails to parse the result is
// false.
func SameCalendarDay(a, b string) bool {
	return SameCalendarDayCells(DateCell{Raw: a}, DateCell{Raw: b})
}

// SameCalendarDayCells is SameCalendarDay for cells that may come from
// workbooks on different date systems.
func SameCalendarDayCells(a, b DateCell) bool {
	ta, ok := ParseDateCell(a)
	if !ok {
		return false
	}
	tb, ok := ParseDateCell(b)
	if !ok {
		return false
	}
	ya, ma, da := ta.Date()
	yb, mb, db := tb.Date()
	return ya == yb && ma == mb && da == db
}

// IsDateKeyword reports whether a field keyword names a date or time field.
func IsDateKeyword(keyword string) bool {
	return strings.Contains(keyword, "时间") || strings.Contains(keyword, "日期")
}
