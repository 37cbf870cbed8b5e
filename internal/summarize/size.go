package summarize

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// ConvertSize formats a byte count with base 1024 and two decimals, e.g. 1048576 -> "1.00 MB".
func ConvertSize(size int64) string {
	if size <= 0 {
		return "0 Bytes"
	}

	value := float64(size)
	i := 0
	for value >= 1024 && i < len(sizeUnits)-1 {
		value /= 1024
		i++
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[i])
}
