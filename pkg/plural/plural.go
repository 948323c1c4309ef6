// Package plural picks word endings for counts in messages.
package plural

import "strconv"

// Int returns suffix unless n is one.
func Int(n int, suffix string) string {
	if n == 1 {
		return ""
	}
	return suffix
}

// Of returns n followed by word with an "s" appended unless n is one.
func Of(n int, word string) string {
	return strconv.Itoa(n) + " " + word + Int(n, "s")
}
