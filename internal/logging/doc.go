// Package logging provides structured logging for teamdate.
//
// It wraps Go's log/slog. Diagnostics go to stderr (or a file given with
// --log-file) so they never mix with the tables written to stdout.
//
// # Levels
//
// The CLI maps its -v count to a level with [LevelForVerbosity]:
//
//	(none)  WARN
//	-v      INFO
//	-vv     DEBUG
//
// # Basic Usage
//
//	logger := logging.NewLogger(os.Stderr, logging.LevelInfo, logging.FormatText)
//	logger.Info("config loaded", "path", path, "teams", 2)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	teamLogger := logger.WithTeam("wcgw").WithGrouping("location")
//	teamLogger.Debug("rows built", "rows", 3)
//
// Output (JSON format):
//
//	{"time":"...","level":"DEBUG","msg":"rows built","team":"wcgw","grouping":"location","rows":3}
//
// # Thread Safety
//
// [Logger] is safe for concurrent use; child loggers share the handler.
package logging
