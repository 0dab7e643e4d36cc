package coerce

import "time"

// DateTimeLayout is the layout used to render datetime values as text
const DateTimeLayout = "2006-01-02 15:04:05"

// dateTimeLayouts are tried in order, and the first successful parse wins
var dateTimeLayouts = []string{
	"2006-1-2",
	"2.1.2006",
	"2006/1/2",
	"2006-1-2 15:04:05",
	"2.1.2006 15:04:05",
}

// DateTimeLayouts returns the ordered layouts recognised as datetime text
func DateTimeLayouts() []string {
	layouts := make([]string, len(dateTimeLayouts))
	copy(layouts, dateTimeLayouts)
	return layouts
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
