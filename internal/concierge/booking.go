package concierge

import (
	"fmt"
	"net/url"
)

const bookingBaseURL = "https://calendar.google.com/calendar/u/0/r/eventedit"

// BookingLink renders the calendar deep link for an intro call about a
// company. Pure string templating, no state.
func BookingLink(companyName string) string {
	params := url.Values{}
	params.Set("text", fmt.Sprintf("CREDEMA Intro Call: %s", companyName))
	params.Set("details", fmt.Sprintf("Introductory call regarding the leverage facility for %s.", companyName))
	params.Set("location", "Google Meet")
	return bookingBaseURL + "?" + params.Encode()
}
