package config

import (
	"net/url"
	"strings"
)

// DatabaseURL is DBURL as handed to the postgres driver and to migrations.
func (c Config) DatabaseURL() string {
	return normalizeDBURL(c.DBURL, c.DBDisablePreparedBinary)
}

// DatabaseName is the database named in DBURL, or "" when it names none.
func (c Config) DatabaseName() string {
	return dbNameFromURL(c.DBURL)
}

// normalizeDBURL asks lib/pq for text results unless the URL already decides.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Has("disable_prepared_binary_result") {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// dbNameFromURL understands both URL and key=value connection strings.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		value, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(value, `"'`); name != "" {
			return name
		}
	}

	return ""
}
