// Package config reads service settings from environment variables
//
// Conf is a namespaced view: New() for the root, Prefix("CLUB_API_") for a
// module. Must* panic through the logger when a required key is unusable,
// May* fall back to a default and warn when a set value does not parse
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"clubhouse/internal/platform/logger"
)

// Conf is a namespaced view over the process environment
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix returns a child view, e.g. New().Prefix("SERVICE_").Prefix("PGSQL_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the full key and its trimmed value
func (c Conf) lookup(k string) (string, string) {
	full := c.key(k)
	return full, strings.TrimSpace(os.Getenv(full))
}

// may parses key with parse or returns def; a parse failure is logged with kind
func may[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	full, s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", full).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	full, s := c.lookup(key)
	if s == "" {
		logger.Get().Panic().Str("key", full).Msg("missing required env")
	}
	return s
}

// Require panics on the first unset key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.MustString(k)
	}
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if _, s := c.lookup(key); s != "" {
		return s
	}
	return def
}

// MayInt returns the value or def
func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, "int", strconv.Atoi)
}

// MayBool returns the value or def
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the value or def; values look like 250ms, 2s, 1h
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "duration", time.ParseDuration)
}

// MayLocation loads an IANA zone name; def is returned when unset or unknown
// The zone database may be missing in slim containers, so Asia/Bangkok is
// also resolved from a fixed offset
func (c Conf) MayLocation(key string, def *time.Location) *time.Location {
	return may(c, key, def, "time zone", func(s string) (*time.Location, error) {
		loc, err := time.LoadLocation(s)
		if err == nil || s != bangkok {
			return loc, err
		}
		return time.FixedZone(bangkok, 7*60*60), nil
	})
}

const bangkok = "Asia/Bangkok"

// MayPort returns a listen address like ":4000"; the value may be "4000" or ":4000"
func (c Conf) MayPort(key, def string) string {
	return may(c, key, def, "TCP port", func(s string) (string, error) {
		p, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
		if err != nil {
			return "", err
		}
		if p < 1 || p > 65535 {
			return "", strconv.ErrRange
		}
		return ":" + strconv.Itoa(p), nil
	})
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	_, s := c.lookup(key)
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it is one of allowed (case insensitive), def when unset
// It panics on any other value
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	full, s := c.lookup(key)
	if s == "" {
		return def
	}
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", full).Str("value", s).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
