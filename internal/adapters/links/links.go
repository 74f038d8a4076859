// Package links builds outbound URLs for maps, messaging, mail, and calendar
// integrations. Pure string construction, no network calls.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

// MapsURL returns a Google Maps search link for the given address.
func MapsURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

// WhatsAppURL returns a wa.me chat link with the message prefilled. Anything
// that is not a digit is stripped from the phone number.
func WhatsAppURL(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}

// MailURL returns a mailto link with subject and body prefilled.
func MailURL(email, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		email, url.QueryEscape(subject), url.QueryEscape(body))
}

// GoogleCalendarURL returns a prefilled Google Calendar template link for the
// event. Like the ICS export, the end time mirrors the start time.
func GoogleCalendarURL(e *domain.Event) string {
	start := strings.ReplaceAll(e.Date, "-", "") + "T" + strings.ReplaceAll(e.StartTime, ":", "") + "00"
	details := fmt.Sprintf("%s\n\nVenue: %s\nLocation: %s", e.Description, e.VenueName, e.Location)
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", start+"/"+start)
	q.Set("details", details)
	q.Set("location", e.Location)
	q.Set("sf", "true")
	q.Set("output", "xml")
	return "https://www.google.com/calendar/render?" + q.Encode()
}
