package data

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// Date is a calendar date without a time of day. It is stored in
// PostgreSQL date columns and travels over JSON as "YYYY-MM-DD".
type Date time.Time

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	// INFO: Needs to be quoted to be a valid JSON string
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(jsonValue []byte) error {
	/* null leaves the zero value so validation reports the field as missing */
	if string(jsonValue) == "null" {
		return nil
	}

	unquoted, err := strconv.Unquote(string(jsonValue))
	if err != nil {
		return ErrInvalidDateFormat
	}

	parsed, err := time.Parse(dateLayout, unquoted)
	if err != nil {
		return ErrInvalidDateFormat
	}

	*d = Date(parsed)
	return nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan type %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time(), nil
}

func (d *Date) parse(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", s, err)
	}

	*d = Date(parsed)
	return nil
}
