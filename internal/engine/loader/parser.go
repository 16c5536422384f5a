package loader

import (
	"iter"
	"strings"
	"unicode"

	"go.trai.ch/xcb/internal/core/domain"
)

// Target marker segments, matched case-insensitively and anchored to the
// whole line:
//
//	Build settings for action <token> and target <name>:
//
// where <name> may be wrapped in double quotes.
const (
	markerPrefix = "build settings for action "
	markerInfix  = " and target "
)

// Parse scans decoded xcodebuild output and produces one record per target.
//
// The returned sequence is lazy, finite and single-use. Stopping iteration
// early abandons the remaining input without emitting a partial record.
// Malformed lines are silently dropped; best-effort accumulation is preferred
// over strict validation of the text.
func Parse(text string, args domain.Arguments, action domain.Action) iter.Seq[domain.Record] {
	return func(yield func(domain.Record) bool) {
		var target string
		settings := make(map[string]string)

		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if name, ok := matchTargetMarker(line); ok {
				if target != "" {
					if !yield(domain.NewRecord(target, settings, args, action)) {
						return
					}
				}
				target = name
				settings = make(map[string]string)
				continue
			}

			if target == "" {
				// Settings before the first marker have no target.
				continue
			}

			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			// Only the first "=" is significant; the value may contain more.
			settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}

		if target != "" {
			yield(domain.NewRecord(target, settings, args, action))
		}
	}
}

// matchTargetMarker checks whether a line has the exact target-marker shape
// and returns the captured target name. The fixed segments are matched
// case-insensitively; the action token must be non-empty and free of
// whitespace; surrounding double quotes on the name are stripped as a pair.
func matchTargetMarker(line string) (string, bool) {
	if !strings.HasSuffix(line, ":") {
		return "", false
	}
	body := line[:len(line)-1]

	if len(body) < len(markerPrefix) || !strings.EqualFold(body[:len(markerPrefix)], markerPrefix) {
		return "", false
	}
	rest := body[len(markerPrefix):]

	infixAt := indexFold(rest, markerInfix)
	if infixAt < 0 {
		return "", false
	}

	action := rest[:infixAt]
	if action == "" || strings.IndexFunc(action, unicode.IsSpace) >= 0 {
		return "", false
	}

	name := rest[infixAt+len(markerInfix):]
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		name = name[1 : len(name)-1]
	}
	if name == "" || strings.ContainsAny(name, `":`) {
		return "", false
	}
	return name, true
}

// indexFold returns the index of the first case-insensitive occurrence of sub
// in s, or -1. sub is ASCII.
func indexFold(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}
