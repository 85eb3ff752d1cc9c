package notes

import (
	"strings"
	"testing"
)

// Caller strings are spliced into script source, so quoting is the only
// thing standing between a note title and arbitrary AppleScript. The
// invariant: whatever the payload, the script outside its string literals
// is byte-identical to one built from harmless input.

var hostileInputs = []string{
	`" & (do shell script "echo pwned") & "`,
	`"); do shell script "echo pwned"; ("`,
	`\" & something & \"`,
	`trailing backslash \`,
	`\\`,
	"embedded\nnewline\"",
}

func TestScriptBuildersNeutralizeHostileInput(t *testing.T) {
	builders := []struct {
		name  string
		build func(payload string) string
	}{
		{"list folder", func(p string) string { return listScript(p) }},
		{"search query", func(p string) string { return searchScript(p, "") }},
		{"search folder", func(p string) string { return searchScript("q", p) }},
		{"read title", func(p string) string { return readScript(p, "") }},
		{"read folder", func(p string) string { return readScript("t", p) }},
		{"create title", func(p string) string { return createScript(p, "b", "f", "") }},
		{"create body", func(p string) string { return createScript("t", p, "f", "") }},
		{"create folder", func(p string) string { return createScript("t", "b", p, "") }},
		{"create account", func(p string) string { return createScript("t", "b", "f", p) }},
		{"edit title", func(p string) string { return editScript(p, "b", "f", false) }},
		{"edit body", func(p string) string { return editScript("t", p, "f", true) }},
	}

	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			benign := stripLiterals(t, b.build("benign"))
			for _, payload := range hostileInputs {
				script := b.build(payload)
				if !strings.Contains(script, escapeText(payload)) {
					t.Errorf("payload %q not embedded in escaped form", payload)
				}
				if got := stripLiterals(t, script); got != benign {
					t.Errorf("payload %q leaked outside string literals:\n%s", payload, script)
				}
			}
		})
	}
}

// stripLiterals removes every double-quoted literal the way the AppleScript
// tokenizer would read them, leaving only code. It also fails the test on an
// unterminated literal, which is what a successful break-out looks like.
func stripLiterals(t *testing.T, script string) string {
	t.Helper()
	var b strings.Builder
	inString := false
	for i := 0; i < len(script); i++ {
		c := script[i]
		switch {
		case inString && c == '\\':
			i++ // skip the escaped character
		case c == '"':
			inString = !inString
		case !inString:
			b.WriteByte(c)
		}
	}
	if inString {
		t.Errorf("unterminated string literal in script:\n%s", script)
	}
	return b.String()
}
