package patchfmt

import (
	"fmt"
	"io"
)

// decimalFallback is the spec.md §4.9/§7.3 fallback that formatModTime
// uses when no TimeFormatter is configured, or the configured one
// fails: "<seconds>.<nanoseconds>" with nanoseconds nine digits wide.
func decimalFallback(seconds, nanos int64) string {
	return fmt.Sprintf("%d.%09d", seconds, nanos)
}

func formatModTime(cfg Config, fv FileView) string {
	seconds, nanos := fv.ModTime()
	if cfg.Time != nil {
		if s, ok := cfg.Time.FormatTime(cfg.TimeFormat, seconds, nanos); ok {
			return s
		}
	}
	return decimalFallback(seconds, nanos)
}

// WriteContextHeader emits the classic context-diff header per
// spec.md §4.9: "*** <name0>\t<time0>\n--- <name1>\t<time1>\n", or the
// label override verbatim when one is configured.
func WriteContextHeader(w io.Writer, cfg Config, f0, f1 FileView) error {
	return writeHeaderPair(w, cfg, f0, f1, "*** ", "--- ")
}

// WriteUnifiedHeader emits the unified-diff header per spec.md §4.9:
// "--- <name0>\t<time0>\n+++ <name1>\t<time1>\n".
func WriteUnifiedHeader(w io.Writer, cfg Config, f0, f1 FileView) error {
	return writeHeaderPair(w, cfg, f0, f1, "--- ", "+++ ")
}

func writeHeaderPair(w io.Writer, cfg Config, f0, f1 FileView, marker0, marker1 string) error {
	if err := writeHeaderLine(w, cfg, f0, marker0, cfg.FileLabels[0]); err != nil {
		return err
	}
	return writeHeaderLine(w, cfg, f1, marker1, cfg.FileLabels[1])
}

// writeHeaderLine emits one header line for fv. A non-empty override
// (from Config.FileLabels, spec.md §3's file_labels) takes precedence
// over fv's own label, matching diffutils' command-line --label, which
// wins over any label the FileView carries itself.
func writeHeaderLine(w io.Writer, cfg Config, fv FileView, marker, override string) error {
	if override != "" {
		_, err := fmt.Fprintf(w, "%s%s\n", marker, override)
		return err
	}
	if fv.HasLabel() {
		_, err := fmt.Fprintf(w, "%s%s\n", marker, fv.Name())
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s\t%s\n", marker, fv.Name(), formatModTime(cfg, fv))
	return err
}
