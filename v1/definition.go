package v1

import (
	"time"

	"github.com/goccy/go-json"
)

// Status is the lookup status HamDB reports in the response envelope.
// Values other than the known constants are kept verbatim.
type Status string

const (
	StatusOK       Status = "OK"
	StatusNotFound Status = "NOT_FOUND"
)

// Known reports whether s is one of the statuses this client understands.
func (s Status) Known() bool {
	return s == StatusOK || s == StatusNotFound
}

// CallsignLookup is a successful HamDB lookup. Optional fields are nil when
// HamDB sent an empty or unusable value.
type CallsignLookup struct {
	// Callsign as HamDB records it.
	Call string `json:"call"`
	// License class, e.g. "E".
	Class   string     `json:"class"`
	Expires *time.Time `json:"expires,omitempty"`
	Status  *string    `json:"status,omitempty"`
	// Maidenhead grid square.
	Grid          string   `json:"grid"`
	Lat           *float64 `json:"lat,omitempty"`
	Lon           *float64 `json:"lon,omitempty"`
	FirstName     *string  `json:"first_name,omitempty"`
	MiddleInitial *string  `json:"middle_initial,omitempty"`
	Name          string   `json:"name"`
	// Name suffix (Jr, Sr, ...), not the callsign suffix.
	Suffix  *string `json:"suffix,omitempty"`
	Addr1   *string `json:"addr1,omitempty"`
	Addr2   *string `json:"addr2,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Country string  `json:"country"`
}

type apiResponse struct {
	HamDB *hamDB `json:"hamdb"`
}

type hamDB struct {
	Version  string          `json:"version"`
	Callsign json.RawMessage `json:"callsign"`
	Messages *messages       `json:"messages"`
}

type messages struct {
	Status *Status `json:"status"`
}

// rawCallsign mirrors the "callsign" object on the wire. Required fields are
// pointers so a missing key can be told apart from an empty value.
type rawCallsign struct {
	Call    *string `json:"call"`
	Class   *string `json:"class"`
	Expires string  `json:"expires"`
	Status  string  `json:"status"`
	Grid    *string `json:"grid"`
	Lat     string  `json:"lat"`
	Lon     string  `json:"lon"`
	Fname   string  `json:"fname"`
	Mi      string  `json:"mi"`
	Name    *string `json:"name"`
	Suffix  string  `json:"suffix"`
	Addr1   string  `json:"addr1"`
	Addr2   string  `json:"addr2"`
	State   string  `json:"state"`
	Zip     string  `json:"zip"`
	Country *string `json:"country"`
}
