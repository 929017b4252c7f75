package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyAssembly = "assembly"
	KeyPath     = "path"
	KeyVersion  = "version"
	KeyRunID    = "run_id"
	KeyMembers  = "members"
	KeyTypes    = "types"
	KeyFiles    = "files"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Assembly(name string) slog.Attr { return slog.String(KeyAssembly, name) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Version(v string) slog.Attr     { return slog.String(KeyVersion, v) }
func RunID(id string) slog.Attr      { return slog.String(KeyRunID, id) }
func Members(n int) slog.Attr        { return slog.Int(KeyMembers, n) }
func Types(n int) slog.Attr          { return slog.Int(KeyTypes, n) }
func Files(n int) slog.Attr          { return slog.Int(KeyFiles, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
