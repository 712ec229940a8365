package logfields

import "log/slog"

// Canonical log field names shared across packages.
const (
	KeyPath       = "path"
	KeySection    = "section"
	KeyLink       = "link"
	KeyTheme      = "theme"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyEventID    = "event_id"
	KeyAddr       = "addr"
	KeyError      = "error"
)

func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func Theme(name string) slog.Attr     { return slog.String(KeyTheme, name) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func EventID(id string) slog.Attr     { return slog.String(KeyEventID, id) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
