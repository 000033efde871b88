package quote

import (
	"fmt"
	"strconv"
	"time"
)

// UnknownSpeaker is the attribution used when neither the transcript nor the
// source metadata names a speaker.
const UnknownSpeaker = "Unknown Speaker"

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatCitation builds a "Speaker, (Mon YYYY)" citation from a speaker name
// and a raw YYYYMMDD publish date. Dates that fail to parse fall back to the
// current month and year rather than failing the citation.
func FormatCitation(speaker, rawDate string) string {
	return formatCitationAt(speaker, rawDate, time.Now())
}

func formatCitationAt(speaker, rawDate string, now time.Time) string {
	year, month, ok := parsePublishDate(rawDate)
	if !ok {
		year = now.Year()
		month = int(now.Month())
	}
	return fmt.Sprintf("%s, (%s %d)", speaker, monthAbbrevs[month-1], year)
}

func parsePublishDate(raw string) (year, month int, ok bool) {
	if len(raw) < 8 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(raw[0:4])
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(raw[4:6])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
