package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

const (
	icsProdID    = "-//TeamFlow//Agency Management//IT"
	icsUIDDomain = "teamflow.agency"
)

// EventsICS renders a VCALENDAR with one VEVENT per event. DTEND is written
// equal to DTSTART: the tracked duration is free text ("3h", "45min") and is
// not reliably parseable, so entries are exported zero-length.
func EventsICS(events []*domain.Event, now time.Time) []byte {
	var b strings.Builder
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icsProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
	stamp := now.UTC().Format("20060102T150405Z")
	for _, e := range events {
		start := icsDateTime(e.Date, e.StartTime)
		desc := strings.ReplaceAll(e.Description, "\n", `\n`)
		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s@%s", e.ID, icsUIDDomain),
			"DTSTAMP:"+stamp,
			"DTSTART:"+start,
			"DTEND:"+start,
			"SUMMARY:"+e.Title,
			fmt.Sprintf("DESCRIPTION:%s - Venue: %s", desc, e.VenueName),
			"LOCATION:"+e.Location,
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// icsDateTime folds "2024-05-15" and "20:00" into "20240515T200000".
func icsDateTime(date, startTime string) string {
	d := strings.ReplaceAll(date, "-", "")
	t := strings.ReplaceAll(startTime, ":", "")
	if t == "" {
		t = "0000"
	}
	return d + "T" + t + "00"
}
