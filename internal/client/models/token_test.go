package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_UnmarshalExpirationShapes(t *testing.T) {
	want := time.Date(2026, 10, 17, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		body string
		want time.Time
	}{
		{name: "http date", body: `{"token":"t","token_expiration":"Sat, 17 Oct 2026 12:30:00 GMT"}`, want: want},
		{name: "rfc3339", body: `{"token":"t","token_expiration":"2026-10-17T12:30:00Z"}`, want: want},
		{name: "naive iso", body: `{"token":"t","token_expiration":"2026-10-17T12:30:00"}`, want: want},
		{name: "unix number", body: `{"token":"t","token_expiration":` + itoa(want.Unix()) + `}`, want: want},
		{name: "unix string", body: `{"token":"t","token_expiration":"` + itoa(want.Unix()) + `"}`, want: want},
		{name: "missing", body: `{"token":"t"}`, want: time.Time{}},
		{name: "null", body: `{"token":"t","token_expiration":null}`, want: time.Time{}},
		{name: "empty string", body: `{"token":"t","token_expiration":""}`, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tok Token
			require.NoError(t, json.Unmarshal([]byte(tt.body), &tok))
			assert.Equal(t, "t", tok.Token)
			assert.True(t, tt.want.Equal(tok.Expiration.Time), "got %v want %v", tok.Expiration.Time, tt.want)
		})
	}
}

func TestToken_UnmarshalUnrecognisedExpiration(t *testing.T) {
	tests := []struct {
		name string
		body string
		raw  string
	}{
		{name: "free text", body: `{"token":"t","token_expiration":"next tuesday"}`, raw: "next tuesday"},
		{name: "overflowing number", body: `{"token":"t","token_expiration":1e300}`, raw: "1e300"},
		{name: "negative overflow", body: `{"token":"t","token_expiration":-1e300}`, raw: "-1e300"},
		{name: "overflowing numeric string", body: `{"token":"t","token_expiration":"99999999999999999999"}`, raw: "99999999999999999999"},
		{name: "object", body: `{"token":"t","token_expiration":{"at":1}}`, raw: `{"at":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tok Token
			require.NoError(t, json.Unmarshal([]byte(tt.body), &tok))
			assert.Equal(t, "t", tok.Token)
			assert.True(t, tok.Expiration.IsZero())
			assert.Equal(t, tt.raw, tok.Expiration.Unrecognised)
		})
	}
}

func TestExpiration_ReuseResetsState(t *testing.T) {
	var e Expiration
	require.NoError(t, json.Unmarshal([]byte(`"garbage"`), &e))
	require.NoError(t, json.Unmarshal([]byte(`null`), &e))
	assert.Empty(t, e.Unrecognised)
	assert.True(t, e.IsZero())
}

func TestExpiration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Expiration{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(Expiration{Time: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-02T03:04:05Z"`, string(b))
}

func itoa(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
