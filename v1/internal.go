package v1

import (
	"net/url"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

func makeURL(endpoint, base, appName string) string {
	return strings.TrimSuffix(endpoint, "/") + "/" + base + "/json/" + appName
}

// unmarshalResponse decodes a HamDB response body. The embedded callsign
// object is only decoded when the status is not NOT_FOUND.
func (c *Client) unmarshalResponse(body []byte, base string) (CallsignLookup, error) {
	const op errors.Op = "v1.Client.unmarshalResponse"
	var lookup CallsignLookup

	decodeErr := func(err error) error {
		return &Error{Kind: KindDecode, Callsign: base, Err: err}
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return lookup, decodeErr(errors.New(op).Err(err).Msgf("unmarshalling JSON: %v", err))
	}
	if resp.HamDB == nil {
		return lookup, decodeErr(errors.New(op).Msg("response is missing the hamdb object"))
	}
	if resp.HamDB.Messages == nil || resp.HamDB.Messages.Status == nil {
		return lookup, decodeErr(errors.New(op).Msg("response is missing messages.status"))
	}

	status := *resp.HamDB.Messages.Status
	if status == StatusNotFound {
		return lookup, &Error{Kind: KindNotFound, Callsign: base}
	}
	if !status.Known() {
		c.logger().InfoWith().Str("callsign", base).Str("status", string(status)).Msg("Unrecognized HamDB status, treating as OK")
	}

	if len(resp.HamDB.Callsign) == 0 {
		return lookup, decodeErr(errors.New(op).Msg("response is missing the callsign object"))
	}

	var raw rawCallsign
	if err := json.Unmarshal(resp.HamDB.Callsign, &raw); err != nil {
		return lookup, decodeErr(errors.New(op).Err(err).Msgf("unmarshalling callsign object: %v", err))
	}

	required := []struct {
		name  string
		value *string
		dst   *string
	}{
		{"call", raw.Call, &lookup.Call},
		{"class", raw.Class, &lookup.Class},
		{"grid", raw.Grid, &lookup.Grid},
		{"name", raw.Name, &lookup.Name},
		{"country", raw.Country, &lookup.Country},
	}
	for _, f := range required {
		if f.value == nil {
			return CallsignLookup{}, decodeErr(errors.New(op).Msgf("callsign object is missing field %q", f.name))
		}
		*f.dst = *f.value
	}

	lookup.Expires = monthDayYear(raw.Expires)
	lookup.Status = blankAsAbsent(raw.Status)
	lookup.Lat = latitude(raw.Lat)
	lookup.Lon = longitude(raw.Lon)
	lookup.FirstName = blankAsAbsent(raw.Fname)
	lookup.MiddleInitial = blankAsAbsent(raw.Mi)
	lookup.Suffix = blankAsAbsent(raw.Suffix)
	lookup.Addr1 = blankAsAbsent(raw.Addr1)
	lookup.Addr2 = blankAsAbsent(raw.Addr2)
	lookup.State = blankAsAbsent(raw.State)
	lookup.Zip = blankAsAbsent(raw.Zip)

	return lookup, nil
}

func (c *Client) validateConfig(op errors.Op) error {
	if c.Config == nil {
		return errors.New(op).Msg("service config is not set")
	}

	c.Config.UserAgent = strings.TrimSpace(c.Config.UserAgent)
	if c.Config.UserAgent == "" {
		return errors.New(op).Msg("lookup service user agent (HamDB application name) cannot be empty")
	}

	c.Config.URL = strings.TrimSpace(c.Config.URL)
	if c.Config.URL == "" {
		return nil
	}
	u, err := url.Parse(c.Config.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(op).Err(err).Msg("lookup service URL is invalid")
	}

	return nil
}
