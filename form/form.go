// Package form models the named parts of a multipart submission.
//
// An [Entry] is exactly one of [String], [Raw] or [File]. All three are
// comparable values, so a set of entries can be kept in a map and two
// entries with equal fields, including byte-for-byte equal bodies, are
// the same entry.
package form

// Entry is one named part of a multipart form.
// The set of implementations is closed to this package.
type Entry interface {
	// FieldName returns the form field name of the entry.
	FieldName() string

	entry()
}

// String is an entry carrying textual content.
type String struct {
	Name        string
	ContentType string
	Charset     string
	Content     string
}

// Raw is an entry carrying raw bytes.
type Raw struct {
	Name        string
	ContentType string
	Charset     string
	Body        Bytes
}

// File is an entry carrying file content under a file name.
type File struct {
	Name        string
	FileName    string
	ContentType string
	Charset     string
	Body        Bytes
}

func (e String) FieldName() string { return e.Name }
func (e Raw) FieldName() string    { return e.Name }
func (e File) FieldName() string   { return e.Name }

func (String) entry() {}
func (Raw) entry()    {}
func (File) entry()   {}

// Unique drops repeated entries, keeping the first occurrence of each
// and the order of the rest.
func Unique(entries ...Entry) []Entry {
	seen := make(map[Entry]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}
