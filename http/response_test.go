package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		res  Response
	}{
		{
			name: "ok with body",
			res: Response{
				Status: StatusOK,
				Headers: []Header{
					{Key: "content-type", Value: "application/json"},
				},
				Body: `{"Hello,": " World!"}`,
			},
		},
		{
			name: "not found, no headers, no body",
			res: Response{
				Status: StatusNotFound,
			},
		},
		{
			name: "body containing blank lines and colons",
			res: Response{
				Status: StatusTeapot,
				Body:   "short\n\nand: stout\n\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(string(tt.res.Encode()))
			require.NoError(t, err)
			assert.True(t, tt.res.Equal(&got), "decoded %+v, want %+v", got, tt.res)
		})
	}
}

func TestResponseEncodeStatusLine(t *testing.T) {
	res := Response{Status: StatusNotFound}
	assert.Equal(t, "404 Not Found\n\n", string(res.Encode()))
}

func TestParseResponseRestoresCanonicalReason(t *testing.T) {
	// The numeric code is authoritative, the wire reason phrase is not.
	got, err := ParseResponse("200 Totally Fine\n\n")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, got.Status)
	assert.Equal(t, "200 OK", got.Status.String())
}

func TestParseResponseErrors(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{name: "empty input", frame: ""},
		{name: "missing blank line separator", frame: "200 OK\n"},
		{name: "unknown status code", frame: "299 Whatever\n\n"},
		{name: "non-numeric status", frame: "abc def\n\n"},
		{name: "status out of range", frame: "99999 Huge\n\n"},
		{name: "header line without colon", frame: "200 OK\nbroken header\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.frame)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.True(t, StatusOK.Valid())
	assert.False(t, StatusCode(299).Valid())
	assert.False(t, StatusCode(0).Valid())

	assert.Equal(t, "I'm a teapot", StatusTeapot.Reason())
	assert.Equal(t, "Unknown Status Code", StatusCode(299).Reason())
}
