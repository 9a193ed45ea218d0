package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWindowSize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSize  time.Duration
		wantError bool
	}{
		{name: "minute", input: "1m", wantSize: time.Minute},
		{name: "ten minutes", input: "10m", wantSize: 10 * time.Minute},
		{name: "hour", input: "2h", wantSize: 2 * time.Hour},
		{name: "days suffix", input: "3d", wantSize: 72 * time.Hour},
		{name: "empty invalid", input: "", wantError: true},
		{name: "negative invalid", input: "-1m", wantError: true},
		{name: "zero invalid", input: "0m", wantError: true},
		{name: "zero days invalid", input: "0d", wantError: true},
		{name: "bad day format invalid", input: "xd", wantError: true},
		{name: "unknown unit invalid", input: "10x", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := ParseWindowSize(tc.input)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantSize, spec.Size)
		})
	}
}

func TestLabel(t *testing.T) {
	require.Equal(t, "10m", Label(10*time.Minute))
	require.Equal(t, "1h", Label(time.Hour))
	require.Equal(t, "2d", Label(48*time.Hour))
	require.Equal(t, "90s", Label(90*time.Second))
	require.Equal(t, "1.5s", Label(1500*time.Millisecond))
	require.Equal(t, "10m", WindowSpec{Size: 10 * time.Minute}.String())
}

func TestWindowSpec_Factor(t *testing.T) {
	w := WindowSpec{Size: 10 * time.Minute}

	n, err := w.Factor(WindowSpec{Size: time.Hour})
	require.NoError(t, err)
	require.Equal(t, 6, n)

	n, err = w.Factor(w)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = w.Factor(WindowSpec{Size: 15 * time.Minute})
	require.Error(t, err)

	_, err = w.Factor(WindowSpec{Size: 5 * time.Minute})
	require.Error(t, err)
}
