package argio

import "os"

// fallbackTermSizeFromEnv reads COLUMNS/LINES; non-numeric values count as unset.
func fallbackTermSizeFromEnv() (int, int) {
	return atoi(os.Getenv("COLUMNS")), atoi(os.Getenv("LINES"))
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
