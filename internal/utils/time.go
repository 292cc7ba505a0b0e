package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDateTime is a timestamp interpreted in Indian Standard Time. Exam dates
// and session timestamps are always presented to users in IST.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var istLocation *time.Location

func init() {
	var err error
	istLocation, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		istLocation = time.FixedZone("IST", 5*60*60+30*60)
	}
}

func NowIST() time.Time {
	return time.Now().In(istLocation)
}

func ToTimePtr(ldt *LocalDateTime) *time.Time {
	if ldt == nil {
		return nil
	}
	t := ldt.Time
	return &t
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", ldt.In(istLocation).Format(layout))), nil
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, istLocation)
	if err != nil {
		return fmt.Errorf("invalid datetime %q: %w", s, err)
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) Value() (driver.Value, error) {
	return ldt.Time, nil
}

func (ldt *LocalDateTime) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into LocalDateTime", value)
	}
	ldt.Time = t.In(istLocation)
	return nil
}
