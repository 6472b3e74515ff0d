package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/plans/pkg/core"
)

var csvHeader = []string{"id", "title", "isComplete", "date", "notes"}

// encoding/csv drops the \r of a quoted \r\n on read, so carriage returns in
// text fields are stored as the two characters `\r` and backslashes doubled.
var (
	escapeText   = strings.NewReplacer(`\`, `\\`, "\r", `\r`)
	unescapeText = strings.NewReplacer(`\\`, `\`, `\r`, "\r")
)

// CSVCodec stores notes as one row per note under a fixed header.
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec.
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

func (c *CSVCodec) Encode(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrEncodeFailure, err)
	}

	for _, n := range normalize(notes) {
		row := []string{
			escapeText.Replace(n.ID),
			escapeText.Replace(n.Title),
			strconv.FormatBool(n.IsComplete),
			n.Date.Format(time.RFC3339Nano),
			escapeText.Replace(n.Notes),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrEncodeFailure, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrEncodeFailure, err)
	}
	return buf.Bytes(), nil
}

func (c *CSVCodec) Decode(data []byte) ([]core.Note, error) {
	if isEmpty(data) {
		return []core.Note{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read csv header: %w", core.ErrDecodeFailure, err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"id", "title", "date"} {
		if _, ok := cols[strings.ToLower(required)]; !ok {
			return nil, fmt.Errorf("%w: csv missing %q column", core.ErrDecodeFailure, required)
		}
	}

	field := func(row []string, name string) string {
		if i, ok := cols[strings.ToLower(name)]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	notes := []core.Note{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrDecodeFailure, err)
		}

		date, err := time.Parse(time.RFC3339Nano, field(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid date: %w", core.ErrDecodeFailure, line, err)
		}

		complete := false
		if raw := field(row, "isComplete"); raw != "" {
			complete, err = strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: invalid isComplete: %w", core.ErrDecodeFailure, line, err)
			}
		}

		notes = append(notes, core.Note{
			ID:         unescapeText.Replace(field(row, "id")),
			Title:      unescapeText.Replace(field(row, "title")),
			IsComplete: complete,
			Date:       date,
			Notes:      unescapeText.Replace(field(row, "notes")),
		})
	}
	return notes, nil
}
