package notes

import (
	"strings"
	"time"
)

// stampLayout matches the stamp handler in scriptHeader. Stamps are host
// local wall-clock times.
const stampLayout = "2006-01-02 15:04:05"

// scriptMarker reports whether out is a script-level error marker and, if
// so, which one.
func scriptMarker(out string) (string, bool) {
	if !strings.HasPrefix(out, recordSep) {
		return "", false
	}
	return strings.TrimPrefix(out, recordSep), true
}

// splitRows breaks delimited output into rows of exactly wantFields fields.
// Anything malformed fails the whole parse: guessing at damaged output is
// worse than reporting it.
func splitRows(out string, wantFields int) ([][]string, error) {
	if out == "" {
		return nil, nil
	}
	raw := strings.Split(strings.TrimSuffix(out, recordSep), recordSep)
	rows := make([][]string, 0, len(raw))
	for _, r := range raw {
		fields := strings.Split(r, fieldSep)
		if len(fields) != wantFields {
			return nil, executionf("malformed output row: %d fields, want %d", len(fields), wantFields)
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

func parseStamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(stampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, executionf("bad timestamp %q in output", s)
	}
	return t, nil
}

// parseSummaries parses list output: title, folder, created, modified.
func parseSummaries(out string) ([]NoteSummary, error) {
	rows, err := splitRows(out, 4)
	if err != nil {
		return nil, err
	}
	notes := make([]NoteSummary, 0, len(rows))
	for _, f := range rows {
		if f[0] == "" || f[1] == "" {
			return nil, executionf("output row missing title or folder")
		}
		created, err := parseStamp(f[2])
		if err != nil {
			return nil, err
		}
		modified, err := parseStamp(f[3])
		if err != nil {
			return nil, err
		}
		notes = append(notes, NoteSummary{Title: f[0], Folder: f[1], Created: created, Modified: modified})
	}
	return notes, nil
}

// parseMatches parses search output: title, folder, snippet.
func parseMatches(out string) ([]SearchMatch, error) {
	rows, err := splitRows(out, 3)
	if err != nil {
		return nil, err
	}
	matches := make([]SearchMatch, 0, len(rows))
	for _, f := range rows {
		if f[0] == "" || f[1] == "" {
			return nil, executionf("output row missing title or folder")
		}
		matches = append(matches, SearchMatch{Title: f[0], Folder: f[1], Snippet: f[2]})
	}
	return matches, nil
}

// parseNote parses read output: a single record with the body as the final
// field. SplitN keeps the body intact even if it contains the field
// separator itself.
func parseNote(out string) (*Note, error) {
	fields := strings.SplitN(out, fieldSep, 5)
	if len(fields) != 5 {
		return nil, executionf("malformed note record: %d fields, want 5", len(fields))
	}
	if fields[0] == "" || fields[1] == "" {
		return nil, executionf("note record missing title or folder")
	}
	created, err := parseStamp(fields[2])
	if err != nil {
		return nil, err
	}
	modified, err := parseStamp(fields[3])
	if err != nil {
		return nil, err
	}
	return &Note{
		Title:    fields[0],
		Folder:   fields[1],
		Created:  created,
		Modified: modified,
		Body:     fields[4],
	}, nil
}

// parseAck parses the title/folder acknowledgement create and edit return.
func parseAck(out string) (title, folder string, err error) {
	fields := strings.Split(out, fieldSep)
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return "", "", executionf("malformed write acknowledgement %q", out)
	}
	return fields[0], fields[1], nil
}

// parseFolders parses folder output: name, parent (account or enclosing
// folder).
func parseFolders(out string) ([]Folder, error) {
	rows, err := splitRows(out, 2)
	if err != nil {
		return nil, err
	}
	folders := make([]Folder, 0, len(rows))
	for _, f := range rows {
		if f[0] == "" {
			return nil, executionf("output row missing folder name")
		}
		folders = append(folders, Folder{Name: f[0], Parent: f[1]})
	}
	return folders, nil
}

// parseNames parses single-field rows (account listing).
func parseNames(out string) ([]string, error) {
	rows, err := splitRows(out, 1)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, f := range rows {
		if f[0] == "" {
			return nil, executionf("output row missing name")
		}
		names = append(names, f[0])
	}
	return names, nil
}
