package envconfig

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strive/selfadjusting/logutil"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"1":     slog.LevelDebug,
		"true":  slog.LevelDebug,
		"2":     logutil.LevelTrace,
		"what":  slog.LevelDebug,
		"'1'":   slog.LevelDebug,
	}

	for value, expect := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("SELFADJUST_DEBUG", value)
			assert.Equal(t, expect, LogLevel())
		})
	}
}

func TestCapacity(t *testing.T) {
	cases := map[string]uint{
		"":       DefaultCapacity,
		"12":     12,
		" 7 ":    7,
		"\"3\"":  3,
		"-1":     DefaultCapacity,
		"twelve": DefaultCapacity,

		"1048577":              MaxCapacity,
		"18446744073709551615": MaxCapacity,
		"99999999999999999999": DefaultCapacity,
	}

	for value, expect := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("SELFADJUST_CAPACITY", value)
			assert.Equal(t, expect, Capacity())
		})
	}
}

func TestValues(t *testing.T) {
	t.Setenv("SELFADJUST_DEBUG", "2")
	t.Setenv("SELFADJUST_CAPACITY", "9")

	vals := Values()
	assert.Equal(t, "TRACE", vals["SELFADJUST_DEBUG"])
	assert.Equal(t, "9", vals["SELFADJUST_CAPACITY"])
}
