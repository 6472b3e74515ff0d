package codec_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/plans/pkg/codec"
	"github.com/aretw0/plans/pkg/core"
	"github.com/google/go-cmp/cmp"
)

// noteRow mirrors core.Note without its identity-only Equal method, so
// cmp compares every field.
type noteRow struct {
	ID         string
	Title      string
	IsComplete bool
	Date       time.Time
	Notes      string
}

func rows(notes []core.Note) []noteRow {
	out := make([]noteRow, len(notes))
	for i, n := range notes {
		out[i] = noteRow{n.ID, n.Title, n.IsComplete, n.Date, n.Notes}
	}
	return out
}

func sampleNotes() []core.Note {
	a := core.NewNote("Buy milk", "2%, not skim")
	a.Date = time.Date(2024, 7, 11, 9, 30, 15, 123456789, time.UTC)

	b := core.NewNote(`Quotes "and", commas`, "line one\nline two")
	b.IsComplete = true
	b.Date = time.Date(2024, 7, 12, 18, 0, 0, 1, time.FixedZone("MSK", 3*60*60))

	c := core.NewNote("Unicode ✓ заметка", "")
	c.Date = time.Date(1999, 12, 31, 23, 59, 59, 999999999, time.UTC)

	d := core.NewNote(`C:\temp\r not a return`, "line one\r\nline two\rlast")
	d.Date = time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC)

	return []core.Note{a, b, c, d}
}

func TestCodecs_RoundTrip(t *testing.T) {
	notes := sampleNotes()

	for _, ext := range codec.Extensions() {
		t.Run(ext, func(t *testing.T) {
			c, err := codec.ForExtension(ext)
			if err != nil {
				t.Fatalf("ForExtension failed: %v", err)
			}

			data, err := c.Encode(notes)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := c.Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if diff := cmp.Diff(rows(notes), rows(decoded)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ext := range codec.Extensions() {
		t.Run(ext, func(t *testing.T) {
			c, _ := codec.ForExtension(ext)

			for _, in := range [][]byte{nil, {}, []byte("  \n")} {
				notes, err := c.Decode(in)
				if err != nil {
					t.Fatalf("Decode(%q) should not fail: %v", in, err)
				}
				if notes == nil || len(notes) != 0 {
					t.Errorf("Decode(%q) expected empty non-nil list, got %#v", in, notes)
				}
			}
		})
	}
}

func TestCodecs_EncodeEmptyList(t *testing.T) {
	for _, ext := range codec.Extensions() {
		t.Run(ext, func(t *testing.T) {
			c, _ := codec.ForExtension(ext)

			data, err := c.Encode(nil)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			notes, err := c.Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(notes) != 0 {
				t.Errorf("expected empty list, got %d notes", len(notes))
			}
		})
	}
}

func TestCodecs_Corrupt(t *testing.T) {
	tests := []struct {
		ext  string
		data string
	}{
		{".json", "this is not json"},
		{".json", `{"id": "object, not array"}`},
		{".json", `[{"id": "x"}] trailing`},
		{".yaml", "id: a mapping, not a sequence"},
		{".yaml", "- [unterminated"},
		{".csv", "title,notes\nno,id column"},
		{".csv", "id,title,date\nx,y,not-a-date"},
		{".csv", "id,title,isComplete,date\nx,y,maybe,2024-07-11T09:30:15Z"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			c, _ := codec.ForExtension(tt.ext)
			_, err := c.Decode([]byte(tt.data))
			if err == nil {
				t.Fatalf("expected error decoding %q", tt.data)
			}
			if !errors.Is(err, core.ErrDecodeFailure) {
				t.Errorf("expected ErrDecodeFailure, got %v", err)
			}
		})
	}
}

func TestJSONCodec_Keys(t *testing.T) {
	n := core.NewNote("Title", "Body")
	data, err := codec.NewJSONCodec().Encode([]core.Note{n})
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{`"id"`, `"title"`, `"isComplete"`, `"date"`, `"notes"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected key %s in %s", key, data)
		}
	}
}

func TestForExtension(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"json", false},
		{".JSON", false},
		{"", false},
		{"yml", false},
		{".csv", false},
		{".plist", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := codec.ForExtension(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForExtension(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, codec.ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestCSVCodec_CarriageReturns(t *testing.T) {
	c := codec.NewCSVCodec()
	n := core.NewNote("crlf", "line one\r\nline two")

	data, err := c.Encode([]core.Note{n})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.ContainsRune(string(data), '\r') {
		t.Errorf("raw carriage return written: %q", data)
	}

	decoded, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 note, got %d", len(decoded))
	}
	if decoded[0].Notes != n.Notes {
		t.Errorf("body changed: got %q, want %q", decoded[0].Notes, n.Notes)
	}
}
