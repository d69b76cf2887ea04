package models

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar-day timestamp. Transactions are dated to the day, so
// this marshals as "2006-01-02" but accepts full RFC 3339 strings too (older
// backups mix both).
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t.Truncate(24 * time.Hour)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date must be a string")
	}
	if t, err := time.Parse(dateLayout, str); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return fmt.Errorf("invalid date: %s", str)
	}
	d.Time = t.Truncate(24 * time.Hour)
	return nil
}
