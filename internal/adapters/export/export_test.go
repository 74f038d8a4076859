package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

func sampleEvents() []*domain.Event {
	confirmed := &domain.Event{
		ID:        "e1",
		Title:     "Gala di Primavera",
		Client:    "Teatro dell'Opera",
		Date:      "2026-05-15",
		StartTime: "20:00",
		VenueName: "Teatro alla Scala",
		Location:  "Piazza della Scala, Milano",
	}
	confirmed.Invite("a1", 500)
	confirmed.Invite("a2", 400)
	confirmed.Invitation("a1").Status = domain.StatusConfirmed
	confirmed.Invitation("a2").Status = domain.StatusConfirmed

	pending := &domain.Event{
		ID:    "e2",
		Title: "Festa Privata",
		Date:  "2026-06-01",
	}
	pending.Invite("a1", 250)

	return []*domain.Event{confirmed, pending}
}

func TestEventsCSV(t *testing.T) {
	body, err := EventsCSV(sampleEvents())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Title", "Date", "Venue", "Client", "Total Fee", "Status"}, rows[0])
	assert.Equal(t, []string{"Gala di Primavera", "2026-05-15", "Teatro alla Scala", "Teatro dell'Opera", "900", "Confirmed"}, rows[1])
	assert.Equal(t, []string{"Festa Privata", "2026-06-01", "", "", "250", "Pending"}, rows[2])
}

func TestEventsCSVEmpty(t *testing.T) {
	body, err := EventsCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Title,Date,Venue,Client,Total Fee,Status\n", string(body))
}

func TestEventsICS(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	body := string(EventsICS(sampleEvents(), now))

	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\n"))
	assert.True(t, strings.HasSuffix(body, "END:VCALENDAR\n"))
	assert.Contains(t, body, "PRODID:-//TeamFlow//Agency Management//IT")
	assert.Contains(t, body, "UID:e1@teamflow.agency")
	assert.Contains(t, body, "DTSTAMP:20260501T093000Z")
	assert.Contains(t, body, "SUMMARY:Gala di Primavera")
	assert.Contains(t, body, "LOCATION:Piazza della Scala, Milano")

	// Zero-length entries: DTEND mirrors DTSTART.
	assert.Contains(t, body, "DTSTART:20260515T200000")
	assert.Contains(t, body, "DTEND:20260515T200000")

	// Missing start time falls back to midnight.
	assert.Contains(t, body, "DTSTART:20260601T000000")

	assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
}
