package notes

import "time"

// --- Arguments ---

// ListNotesArgs arguments for list_notes
type ListNotesArgs struct {
	Folder string `json:"folder,omitempty" jsonschema:"Folder to list (optional, all folders when omitted)"`
}

// SearchNotesArgs arguments for search_notes
type SearchNotesArgs struct {
	Query  string `json:"query" jsonschema:"Substring to match against note titles and bodies (case insensitive)"`
	Folder string `json:"folder,omitempty" jsonschema:"Folder to search in (optional)"`
}

// ReadNoteArgs arguments for read_note
type ReadNoteArgs struct {
	Title  string `json:"title" jsonschema:"Exact title of the note to read"`
	Folder string `json:"folder,omitempty" jsonschema:"Folder holding the note (optional, first match across folders when omitted)"`
}

// CreateNoteArgs arguments for create_note
type CreateNoteArgs struct {
	Title  string `json:"title" jsonschema:"Title for the new note"`
	Body   string `json:"body" jsonschema:"Body text for the new note"`
	Folder string `json:"folder,omitempty" jsonschema:"Folder to create the note in (optional, host default folder when omitted)"`
}

// EditNoteArgs arguments for edit_note
type EditNoteArgs struct {
	Title  string `json:"title" jsonschema:"Exact title of the note to edit"`
	Body   string `json:"body" jsonschema:"New body text"`
	Folder string `json:"folder,omitempty" jsonschema:"Folder holding the note (optional)"`
	Append bool   `json:"append,omitempty" jsonschema:"Concatenate onto the existing body instead of replacing it (default false)"`
}

// --- Results ---

// NoteSummary is one row of a listing.
type NoteSummary struct {
	Title    string    `json:"title" jsonschema:"Note title"`
	Folder   string    `json:"folder" jsonschema:"Folder holding the note"`
	Created  time.Time `json:"created" jsonschema:"Creation time"`
	Modified time.Time `json:"modified" jsonschema:"Last modification time"`
}

// SearchMatch is one search hit.
type SearchMatch struct {
	Title   string `json:"title" jsonschema:"Note title"`
	Folder  string `json:"folder" jsonschema:"Folder holding the note"`
	Snippet string `json:"snippet" jsonschema:"Start of the note body"`
}

// Note is a full note as read from the host.
type Note struct {
	Title    string    `json:"title" jsonschema:"Note title"`
	Folder   string    `json:"folder" jsonschema:"Folder holding the note"`
	Created  time.Time `json:"created" jsonschema:"Creation time"`
	Modified time.Time `json:"modified" jsonschema:"Last modification time"`
	Body     string    `json:"body" jsonschema:"Note body"`
}

// Folder is one folder in the host, with its parent (account, or enclosing
// folder for nested folders).
type Folder struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

// ListNotesResult result of list_notes
type ListNotesResult struct {
	Notes []NoteSummary `json:"notes" jsonschema:"Notes in host enumeration order"`
	Count int           `json:"count" jsonschema:"Number of notes returned"`
}

// SearchNotesResult result of search_notes
type SearchNotesResult struct {
	Matches []SearchMatch `json:"matches" jsonschema:"Matching notes in host enumeration order"`
	Count   int           `json:"count" jsonschema:"Number of matches returned"`
}

// WriteResult acknowledges create_note and edit_note.
type WriteResult struct {
	Title  string `json:"title" jsonschema:"Title of the written note"`
	Folder string `json:"folder" jsonschema:"Folder the note lives in"`
}
