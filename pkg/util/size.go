// Package util holds small helpers shared across packages.
package util

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with binary prefixes and one decimal place,
// e.g. 1536 -> "1.5KB". Values are divided by 1024 until they drop below 1024
// or the unit list runs out at PB.
func FormatSize(size int64) string {
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1fPB", value)
}

// FormatMegabytes renders a byte count as megabytes with two decimal places,
// the fixed unit used by the statistics summary line.
func FormatMegabytes(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}
