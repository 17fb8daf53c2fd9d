// Package codec carries decoders for common wire formats that arrive as
// JSON strings. They are built from AndThen over String, so their
// failures read like the built-in ones.
package codec

import (
	"net/url"
	"time"

	jsonbound "github.com/jsonbound/jsonbound"
)

// TimeRFC3339 decodes an RFC3339 timestamp string into a time.Time.
func TimeRFC3339() jsonbound.Decoder[time.Time] {
	return jsonbound.AndThen(func(s string) jsonbound.Decoder[time.Time] {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return jsonbound.Fail[time.Time](jsonbound.Expected("an RFC3339 timestamp", s))
		}
		return jsonbound.Succeed(t)
	}, jsonbound.String())
}

// URL decodes an absolute URL string into a *url.URL.
func URL() jsonbound.Decoder[*url.URL] {
	return jsonbound.AndThen(func(s string) jsonbound.Decoder[*url.URL] {
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return jsonbound.Fail[*url.URL](jsonbound.Expected("an absolute URL", s))
		}
		return jsonbound.Succeed(u)
	}, jsonbound.String())
}
