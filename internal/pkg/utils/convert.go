// Package utils contains small shared helpers.
package utils

import "strconv"

// ConvertToInt parses s as a base-10 integer, returning 0 when parsing fails.
// Used for optional numeric query parameters where absence and garbage are
// treated alike.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
