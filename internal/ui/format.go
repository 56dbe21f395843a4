package ui

import (
	"time"

	"github.com/dustin/go-humanize"

	"gocp/internal/schema"
)

// PermString renders permission bits in the conventional ls style, e.g.
// drwxr-xr-x.
func PermString(m *schema.Metadata) string {
	perms := []byte("----------")

	switch {
	case m.IsDir:
		perms[0] = 'd'
	case m.IsSymlink:
		perms[0] = 'l'
	}

	bits := "rwxrwxrwx"
	for i := range 9 {
		if m.Perms&(1<<uint(8-i)) != 0 {
			perms[1+i] = bits[i]
		}
	}

	return string(perms)
}

// TimeString renders a modification timestamp for display.
func TimeString(m *schema.Metadata) string {
	return m.ModTime().Format("2006-01-02 15:04")
}

// SpeedString renders a transfer rate in bytes per second for display.
func SpeedString(bytesPerSecond float64) string {
	if bytesPerSecond <= 0 {
		return "-"
	}

	return humanize.Bytes(uint64(bytesPerSecond)) + "/s"
}

// DurationString renders an elapsed or estimated duration for display.
func DurationString(d time.Duration) string {
	if d <= 0 {
		return "-"
	}

	return d.Round(time.Second).String()
}
