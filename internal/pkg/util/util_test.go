package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Wireless Mouse", "wireless-mouse"},
		{"USB-C  Hub (7 in 1)", "usb-c-hub-7-in-1"},
		{"  Trimmed  ", "trimmed"},
		{"ALL CAPS", "all-caps"},
		{"already-slugged", "already-slugged"},
		{"50% Off!!", "50-off"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, Slugify(c.in), "input=%q", c.in)
	}
}
