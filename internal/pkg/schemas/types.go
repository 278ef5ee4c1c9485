package schemas

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

var nullLiteral = []byte("null")

// FlexInt accepts a JSON number or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, nullLiteral) || len(b) == 0 {
		*f = 0
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flexint: %q is not a number", s)
	}
	*f = FlexInt(int(n))
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// FlexFloat accepts a JSON number or a numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, nullLiteral) || len(b) == 0 {
		*f = 0
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flexfloat: %q is not a number", s)
	}
	*f = FlexFloat(n)
	return nil
}

// FlexString accepts a JSON string or number and keeps its text.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, nullLiteral) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

// NullString maps null or an absent value to the empty string.
type NullString string

func (n *NullString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), nullLiteral) {
		*n = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*n = NullString(s)
	return nil
}

func (n NullString) String() string {
	return string(n)
}

const (
	clockLayout      = "15:04:05"
	shortClockLayout = "15:04"
	dateLayout       = "2006-01-02"
)

// nowFunc anchors clock values to a calendar day. Tests replace it.
var nowFunc = time.Now

// ClockTime is a wall clock value carried as "HH:MM:SS". It is anchored to
// the current date so it can be compared and shifted like any time.
type ClockTime struct {
	time.Time
}

func ParseClock(value string) (ClockTime, error) {
	today := nowFunc()
	for _, layout := range []string{clockLayout, shortClockLayout} {
		parsed, err := time.ParseInLocation(dateLayout+"T"+layout, today.Format(dateLayout)+"T"+value, today.Location())
		if err == nil {
			return ClockTime{Time: parsed}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("clocktime: %q is not HH:MM:SS", value)
}

// NewClockTime keeps only the wall clock of t.
func NewClockTime(t time.Time) ClockTime {
	today := nowFunc()
	return ClockTime{Time: time.Date(today.Year(), today.Month(), today.Day(), t.Hour(), t.Minute(), t.Second(), 0, today.Location())}
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c ClockTime) String() string {
	return c.Time.Format(clockLayout)
}

// Short renders "HH:mm", the key used to match slots across dates.
func (c ClockTime) Short() string {
	return c.Time.Format(shortClockLayout)
}

// On places the clock on the calendar day of date.
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), c.Second(), 0, date.Location())
}

type Role string

const (
	RoleCarer        Role = "carer"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

type Profession string

const (
	ProfessionCounselor    Profession = "counselor"
	ProfessionPsychologist Profession = "psychologist"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Option struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

type Paginated[T any] struct {
	Count    FlexInt    `json:"count"`
	Next     NullString `json:"next"`
	Previous NullString `json:"previous"`
	Results  []T        `json:"results" validate:"dive"`
}
