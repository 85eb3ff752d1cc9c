package notes

import (
	"testing"
	"time"
)

func TestScriptMarker(t *testing.T) {
	if m, ok := scriptMarker(recordSep + "not_found"); !ok || m != "not_found" {
		t.Errorf("got %q, %v", m, ok)
	}
	if _, ok := scriptMarker("Grocery List" + fieldSep + "Shopping"); ok {
		t.Error("data rows are not markers")
	}
	if _, ok := scriptMarker(""); ok {
		t.Error("empty output is not a marker")
	}
}

func TestSplitRows(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		rows, err := splitRows("", 4)
		if err != nil || rows != nil {
			t.Errorf("got %v, %v", rows, err)
		}
	})

	t.Run("wrong arity fails closed", func(t *testing.T) {
		_, err := splitRows(row("only", "three", "fields"), 4)
		if KindOf(err) != KindExecution {
			t.Errorf("expected execution error, got %v", err)
		}
	})

	t.Run("two well formed rows", func(t *testing.T) {
		out := row("a", "b") + row("c", "d")
		rows, err := splitRows(out, 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 || rows[1][1] != "d" {
			t.Errorf("got %v", rows)
		}
	})
}

func TestParseStamp(t *testing.T) {
	got, err := parseStamp("2026-08-23 14:05:09")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 8, 23, 14, 5, 9, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := parseStamp("yesterday-ish"); KindOf(err) != KindExecution {
		t.Errorf("expected execution error, got %v", err)
	}
}

func TestParseSummaries(t *testing.T) {
	out := row("Grocery List", "Shopping", "2026-08-01 09:00:00", "2026-08-23 14:05:09") +
		row("Milk run", "Shopping", "2026-08-02 10:30:00", "2026-08-02 10:31:00")

	notes, err := parseSummaries(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes", len(notes))
	}
	if notes[0].Title != "Grocery List" || notes[0].Folder != "Shopping" {
		t.Errorf("bad first row: %+v", notes[0])
	}
	if notes[0].Modified.Hour() != 14 {
		t.Errorf("bad modified time: %v", notes[0].Modified)
	}

	t.Run("empty title fails closed", func(t *testing.T) {
		bad := row("", "Shopping", "2026-08-01 09:00:00", "2026-08-01 09:00:00")
		if _, err := parseSummaries(bad); KindOf(err) != KindExecution {
			t.Errorf("expected execution error, got %v", err)
		}
	})

	t.Run("bad stamp fails closed", func(t *testing.T) {
		bad := row("T", "F", "not a date", "2026-08-01 09:00:00")
		if _, err := parseSummaries(bad); KindOf(err) != KindExecution {
			t.Errorf("expected execution error, got %v", err)
		}
	})
}

func TestParseMatches(t *testing.T) {
	out := row("Grocery List", "Shopping", "milk, eggs") + row("Recipes", "Kitchen", "")
	matches, err := parseMatches(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches", len(matches))
	}
	if matches[0].Snippet != "milk, eggs" {
		t.Errorf("bad snippet: %q", matches[0].Snippet)
	}
	if matches[1].Snippet != "" {
		t.Error("empty snippet is fine, notes can have empty bodies")
	}
}

func TestParseNote(t *testing.T) {
	t.Run("body survives verbatim", func(t *testing.T) {
		body := "line one\nline two" + fieldSep + "with a stray separator"
		out := record("T", "F", "2026-08-01 09:00:00", "2026-08-23 14:05:09", body)
		n, err := parseNote(out)
		if err != nil {
			t.Fatal(err)
		}
		if n.Body != body {
			t.Errorf("body mangled: %q", n.Body)
		}
		if n.Title != "T" || n.Folder != "F" {
			t.Errorf("bad header fields: %+v", n)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		out := record("T", "F", "2026-08-01 09:00:00", "2026-08-01 09:00:00", "")
		n, err := parseNote(out)
		if err != nil {
			t.Fatal(err)
		}
		if n.Body != "" {
			t.Errorf("got %q", n.Body)
		}
	})

	t.Run("too few fields fails closed", func(t *testing.T) {
		if _, err := parseNote(record("T", "F", "2026-08-01 09:00:00")); KindOf(err) != KindExecution {
			t.Errorf("expected execution error, got %v", err)
		}
	})
}

func TestParseAck(t *testing.T) {
	title, folder, err := parseAck(record("Grocery List", "Shopping"))
	if err != nil {
		t.Fatal(err)
	}
	if title != "Grocery List" || folder != "Shopping" {
		t.Errorf("got %q, %q", title, folder)
	}

	for _, bad := range []string{"", "just a title", record("", "Shopping"), record("a", "b", "c")} {
		if _, _, err := parseAck(bad); KindOf(err) != KindExecution {
			t.Errorf("parseAck(%q): expected execution error, got %v", bad, err)
		}
	}
}

func TestParseFolders(t *testing.T) {
	out := row("Notes", "iCloud") + row("Shopping", "iCloud") + row("Archive", "Notes")
	folders, err := parseFolders(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 3 {
		t.Fatalf("got %d folders", len(folders))
	}
	if folders[2].Parent != "Notes" {
		t.Error("nested folders keep their enclosing folder as parent")
	}
}

func TestParseNames(t *testing.T) {
	names, err := parseNames(row("iCloud") + row("On My Mac"))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[1] != "On My Mac" {
		t.Errorf("got %v", names)
	}

	if _, err := parseNames(recordSep + "x"); err == nil {
		t.Error("leading record separator is not a valid name row")
	}
}
