package model

// Record is one entry of a JSON record set. Fields are not schema-enforced;
// readers must tolerate missing keys.
type Record map[string]interface{}

// String returns the value for key as a string, or "" when the key is
// absent or not a string.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Merge returns a copy of r with the supplied fields applied on top.
// Provided keys overwrite, new keys are added, omitted keys are retained.
func (r Record) Merge(fields Record) Record {
	out := make(Record, len(r)+len(fields))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// Memory is the typed view of a memory record. Untyped extra fields survive
// round-trips through the store because records are persisted as Record.
type Memory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Caption  string `json:"caption"`
	Details  string `json:"details"`
	ImageURL string `json:"imageUrl"`
}

// AsRecord converts a Memory into its stored representation.
func (m Memory) AsRecord() Record {
	return Record{
		"id":       m.ID,
		"name":     m.Name,
		"caption":  m.Caption,
		"details":  m.Details,
		"imageUrl": m.ImageURL,
	}
}

// MemoryFromRecord reads the known fields defensively.
func MemoryFromRecord(r Record) Memory {
	return Memory{
		ID:       r.String("id"),
		Name:     r.String("name"),
		Caption:  r.String("caption"),
		Details:  r.String("details"),
		ImageURL: r.String("imageUrl"),
	}
}

// Song is one playlist entry.
type Song struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Session is an issued credential with a lazy expiry.
// Expires is epoch milliseconds; zero means the session never expires.
type Session struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires,omitempty"`
}

// ValidAt reports whether the session is still valid at the given epoch-ms
// instant.
func (s Session) ValidAt(nowMillis int64) bool {
	return s.Expires == 0 || s.Expires > nowMillis
}

// Secret holds the single shared password. It is read-only from the
// service's perspective; operators edit the backing file directly.
type Secret struct {
	Password string `json:"password"`
}

// StoredFile describes a persisted upload.
type StoredFile struct {
	StoredFilename string `json:"storedFilename"`
	OriginalName   string `json:"originalName"`
	MimeType       string `json:"mimeType"`
	SizeBytes      int64  `json:"sizeBytes"`
}
