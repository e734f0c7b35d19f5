package extfile

import (
	"math"

	"github.com/dustin/go-humanize"
)

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// Size returns the size of the entry in bytes.
func (r FileRef) Size() (int64, error) {
	info, err := r.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// HumanSize returns the size formatted by FormatSize.
func (r FileRef) HumanSize() (string, error) {
	n, err := r.Size()
	if err != nil {
		return "", err
	}
	return FormatSize(n), nil
}

// FormatSize renders n bytes using base-1024 units "Byte", "KB", "MB" and
// "GB" with at most two decimals, e.g. "512 Byte", "1.5 KB" or "1.23 MB".
func FormatSize(n int64) string {
	switch {
	case n < kb:
		return formatUnit(float64(n), "Byte")
	case n < mb:
		return formatUnit(float64(n)/kb, "KB")
	case n < gb:
		return formatUnit(float64(n)/mb, "MB")
	default:
		return formatUnit(float64(n)/gb, "GB")
	}
}

// formatUnit rounds to two decimals first; FtoaWithDigits only truncates.
func formatUnit(v float64, unit string) string {
	return humanize.FtoaWithDigits(math.Round(v*100)/100, 2) + " " + unit
}
