package format

import (
	"time"

	"github.com/araddon/dateparse"
)

const dateLayout = "01-02-2006"

// Date renders any recognisable date as MM-DD-YYYY in local time.
// Unparseable input is returned unchanged, as are times or month/day pairs
// without a year and long digit runs that would otherwise read as epochs.
func Date(date string) string {
	if date == "" {
		return ""
	}
	if isDigits(date) && len(date) > 8 {
		return date
	}
	t, err := dateparse.ParseLocal(date)
	if err != nil || t.Year() == 0 {
		return date
	}
	return t.In(time.Local).Format(dateLayout)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
