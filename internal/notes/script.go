package notes

import (
	"fmt"
	"strings"
)

// Output delimiters. Control characters keep them clear of anything a note
// plausibly contains, and rows never begin with recordSep, so a leading
// recordSep marks a script-level error instead of data.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Script-level error markers. A script that hits a domain error returns
// recordSep followed by one of these words as its entire output.
const (
	markerNotFound       = "not_found"
	markerFolderNotFound = "folder_not_found"
)

// snippetChars is how much of a note body a search result carries.
const snippetChars = 200

// scriptHeader opens every generated script: it binds the delimiters and
// defines the date handlers. AppleScript has no portable date format verb,
// so stamp assembles "YYYY-MM-DD HH:MM:SS" by hand; handlers are called with
// the "my" prefix inside tell blocks.
const scriptHeader = `set fieldSep to character id 31
set recordSep to character id 30

on pad(n)
	return text -2 thru -1 of ("0" & n)
end pad

on stamp(d)
	return (year of d as text) & "-" & pad(month of d as integer) & "-" & pad(day of d) & " " & pad(hours of d) & ":" & pad(minutes of d) & ":" & pad(seconds of d)
end stamp

`

// escapeText renders s for the inside of a double-quoted AppleScript string
// literal. Backslash and double quote are the only characters the language
// escapes; newlines and everything else pass through literally.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// quote wraps s in an AppleScript string literal.
func quote(s string) string {
	return `"` + escapeText(s) + `"`
}

// listScript enumerates notes as title/folder/created/modified rows. A
// missing folder yields empty output, not an error.
func listScript(folder string) string {
	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString("set out to \"\"\ntell application \"Notes\"\n")
	if folder == "" {
		b.WriteString("\tset hits to every note\n")
	} else {
		fmt.Fprintf(&b, "\tif not (exists folder %s) then return \"\"\n", quote(folder))
		fmt.Fprintf(&b, "\tset hits to every note of folder %s\n", quote(folder))
	}
	b.WriteString(`	repeat with n in hits
		set out to out & (name of n) & fieldSep & (name of container of n) & fieldSep & (my stamp(creation date of n)) & fieldSep & (my stamp(modification date of n)) & recordSep
	end repeat
end tell
return out
`)
	return b.String()
}

// searchScript matches query against note names and bodies, case
// insensitively, and emits title/folder/snippet rows in host enumeration
// order.
func searchScript(query, folder string) string {
	q := quote(query)
	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString("set out to \"\"\ntell application \"Notes\"\n")
	if folder != "" {
		fmt.Fprintf(&b, "\tif not (exists folder %s) then return \"\"\n", quote(folder))
	}
	b.WriteString("\tignoring case\n")
	if folder == "" {
		fmt.Fprintf(&b, "\t\tset hits to every note whose name contains %s or body contains %s\n", q, q)
	} else {
		fmt.Fprintf(&b, "\t\tset hits to every note of folder %s whose name contains %s or body contains %s\n", quote(folder), q, q)
	}
	b.WriteString("\tend ignoring\n")
	fmt.Fprintf(&b, `	repeat with n in hits
		set snippet to body of n as text
		if (count of snippet) > %d then set snippet to text 1 thru %d of snippet
		set out to out & (name of n) & fieldSep & (name of container of n) & fieldSep & snippet & recordSep
	end repeat
end tell
return out
`, snippetChars, snippetChars)
	return b.String()
}

// readScript fetches one note as a single title/folder/created/modified/body
// record, body last so it can contain anything. Title matching uses the
// host's default string comparison, which ignores case; with folder omitted,
// the first note in host enumeration order wins.
func readScript(title, folder string) string {
	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString("tell application \"Notes\"\n")
	if folder != "" {
		fmt.Fprintf(&b, "\tif not (exists folder %s) then return recordSep & %q\n", quote(folder), markerNotFound)
	}
	if folder == "" {
		fmt.Fprintf(&b, "\tset hits to every note whose name is %s\n", quote(title))
	} else {
		fmt.Fprintf(&b, "\tset hits to every note of folder %s whose name is %s\n", quote(folder), quote(title))
	}
	fmt.Fprintf(&b, "\tif (count of hits) = 0 then return recordSep & %q\n", markerNotFound)
	b.WriteString(`	set n to item 1 of hits
	return (name of n) & fieldSep & (name of container of n) & fieldSep & (my stamp(creation date of n)) & fieldSep & (my stamp(modification date of n)) & fieldSep & (body of n as text)
end tell
`)
	return b.String()
}

// createScript makes a new note and acknowledges with a title/folder record.
// With a folder the script guards on its existence first; without one the
// host picks its default folder. When account is set the whole operation is
// scoped to that account.
func createScript(title, body, folder, account string) string {
	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString("tell application \"Notes\"\n")
	indent := "\t"
	if account != "" {
		fmt.Fprintf(&b, "\ttell account %s\n", quote(account))
		indent = "\t\t"
	}
	props := fmt.Sprintf("{name:%s, body:%s}", quote(title), quote(body))
	if folder == "" {
		fmt.Fprintf(&b, "%sset n to make new note with properties %s\n", indent, props)
	} else {
		fmt.Fprintf(&b, "%sif not (exists folder %s) then return recordSep & %q\n", indent, quote(folder), markerFolderNotFound)
		fmt.Fprintf(&b, "%sset n to make new note at folder %s with properties %s\n", indent, quote(folder), props)
	}
	fmt.Fprintf(&b, "%sreturn (name of n) & fieldSep & (name of container of n)\n", indent)
	if account != "" {
		b.WriteString("\tend tell\n")
	}
	b.WriteString("end tell\n")
	return b.String()
}

// editScript rewrites a note's body, either replacing it or concatenating
// onto it, and acknowledges with a title/folder record. A missing note or
// missing folder both read as not found: there is nothing to edit either
// way.
func editScript(title, body, folder string, appendBody bool) string {
	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString("tell application \"Notes\"\n")
	if folder != "" {
		fmt.Fprintf(&b, "\tif not (exists folder %s) then return recordSep & %q\n", quote(folder), markerNotFound)
	}
	if folder == "" {
		fmt.Fprintf(&b, "\tset hits to every note whose name is %s\n", quote(title))
	} else {
		fmt.Fprintf(&b, "\tset hits to every note of folder %s whose name is %s\n", quote(folder), quote(title))
	}
	fmt.Fprintf(&b, "\tif (count of hits) = 0 then return recordSep & %q\n", markerNotFound)
	b.WriteString("\tset n to item 1 of hits\n")
	if appendBody {
		fmt.Fprintf(&b, "\tset body of n to (body of n as text) & %s\n", quote(body))
	} else {
		fmt.Fprintf(&b, "\tset body of n to %s\n", quote(body))
	}
	b.WriteString("\treturn (name of n) & fieldSep & (name of container of n)\nend tell\n")
	return b.String()
}

// foldersScript lists every folder as a name/account row. Folders can nest,
// in which case the second field is the parent folder instead of the
// account.
func foldersScript() string {
	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString(`set out to ""
tell application "Notes"
	repeat with f in every folder
		set out to out & (name of f) & fieldSep & (name of container of f) & recordSep
	end repeat
end tell
return out
`)
	return b.String()
}

// accountsScript lists every account by name.
func accountsScript() string {
	var b strings.Builder
	b.WriteString(scriptHeader)
	b.WriteString(`set out to ""
tell application "Notes"
	repeat with a in every account
		set out to out & (name of a) & recordSep
	end repeat
end tell
return out
`)
	return b.String()
}

// countScript returns the total note count, used as a cheap liveness probe.
func countScript() string {
	return `tell application "Notes"
	return (count of notes) as text
end tell
`
}
