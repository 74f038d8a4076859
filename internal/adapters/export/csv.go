// Package export builds the file payloads the UI offers for download: a CSV
// report of all events and an ICS calendar for phone sync. Both are plain
// byte builders; writing the file to disk is the caller's business.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

var csvHeader = []string{"Title", "Date", "Venue", "Client", "Total Fee", "Status"}

// EventsCSV renders one row per event: title, date, venue, client, the fee
// total owed to artists, and an aggregate status label — "Confirmed" only
// when every invitation on the event is confirmed.
func EventsCSV(events []*domain.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range events {
		var fees float64
		for _, inv := range e.Invitations {
			fees += inv.Fee
		}
		status := "Pending"
		if e.AllConfirmed() {
			status = "Confirmed"
		}
		row := []string{
			e.Title,
			e.Date,
			e.VenueName,
			e.Client,
			strconv.FormatFloat(fees, 'f', -1, 64),
			status,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
