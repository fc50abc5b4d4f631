package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// likeDateLayout covers everything up to the seconds. The trailing ":SSSSSS"
// microsecond group is handled by hand because Go layouts only recognise
// fractional seconds after '.' or ','.
const likeDateLayout = "02-01-2006__15:04:05"

const likeDateFracDigits = 6

// ErrInvalidLikeDate is returned when a like date does not match DD-MM-YYYY__HH:mm:ss:SSSSSS.
var ErrInvalidLikeDate = errors.New("invalid like date")

// LikeDate is the instant a favourite was recorded, with microsecond precision.
// It carries no zone; values are normalised to UTC.
type LikeDate struct {
	t time.Time
}

// NewLikeDate normalises t to UTC at microsecond precision.
func NewLikeDate(t time.Time) LikeDate {
	return LikeDate{t: t.UTC().Truncate(time.Microsecond)}
}

// ParseLikeDate parses the textual form, e.g. "15-01-2023__10:30:00:000000".
func ParseLikeDate(s string) (LikeDate, error) {
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 || len(s)-idx-1 != likeDateFracDigits {
		return LikeDate{}, fmt.Errorf("%w: %q", ErrInvalidLikeDate, s)
	}

	frac := s[idx+1:]
	for _, r := range frac {
		if r < '0' || r > '9' {
			return LikeDate{}, fmt.Errorf("%w: %q", ErrInvalidLikeDate, s)
		}
	}
	micros, err := strconv.Atoi(frac)
	if err != nil {
		return LikeDate{}, fmt.Errorf("%w: %q", ErrInvalidLikeDate, s)
	}

	base, err := time.ParseInLocation(likeDateLayout, s[:idx], time.UTC)
	if err != nil {
		return LikeDate{}, fmt.Errorf("%w: %q: %v", ErrInvalidLikeDate, s, err)
	}

	return LikeDate{t: base.Add(time.Duration(micros) * time.Microsecond)}, nil
}

// MustParseLikeDate is ParseLikeDate for literals known to be valid.
func MustParseLikeDate(s string) LikeDate {
	ld, err := ParseLikeDate(s)
	if err != nil {
		panic(err)
	}
	return ld
}

// Time returns the underlying UTC instant.
func (d LikeDate) Time() time.Time {
	return d.t
}

func (d LikeDate) IsZero() bool {
	return d.t.IsZero()
}

func (d LikeDate) Equal(other LikeDate) bool {
	return d.t.Equal(other.t)
}

func (d LikeDate) Before(other LikeDate) bool {
	return d.t.Before(other.t)
}

// String formats the date as DD-MM-YYYY__HH:mm:ss:SSSSSS. The zero value formats as "".
func (d LikeDate) String() string {
	if d.t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%06d", d.t.Format(likeDateLayout), d.t.Nanosecond()/int(time.Microsecond))
}

func (d LikeDate) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *LikeDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = LikeDate{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected string: %v", ErrInvalidLikeDate, err)
	}
	if s == "" {
		*d = LikeDate{}
		return nil
	}

	parsed, err := ParseLikeDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
