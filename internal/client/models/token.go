package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Token is the login response: a bearer token and, when the server sends
// one, its expiry.
type Token struct {
	Token      string     `json:"token"`
	Expiration Expiration `json:"token_expiration"`
}

// Expiration accepts the shapes the API has been seen to use for
// token_expiration: an HTTP date, an RFC 3339 timestamp or unix seconds
// (number or numeric string). A zero value means "not provided".
//
// A value in any other shape decodes to the zero time and is kept in
// Unrecognised, so a login response never fails on its expiry alone.
type Expiration struct {
	time.Time
	Unrecognised string
}

var expirationLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (e *Expiration) UnmarshalJSON(b []byte) error {
	*e = Expiration{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] != '"' {
		var secs float64
		if err := json.Unmarshal(b, &secs); err != nil || secs >= math.MaxInt64 || secs < math.MinInt64 {
			e.Unrecognised = string(b)
			return nil
		}
		e.Time = time.Unix(int64(secs), 0).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		e.Unrecognised = string(b)
		return nil
	}
	if s == "" {
		return nil
	}

	t, err := ParseExpiration(s)
	if err != nil {
		e.Unrecognised = s
		return nil
	}
	e.Time = t
	return nil
}

func (e Expiration) MarshalJSON() ([]byte, error) {
	if e.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(e.UTC().Format(time.RFC3339))
}

// ParseExpiration parses one textual expiry value.
func ParseExpiration(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("token_expiration: unrecognised format %q", s)
}
