package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Expected column headers in the published sheet. These must match exactly.
const (
	headerName      = "In-Game Name"
	headerRoles     = "Preferred Role(s)"
	headerTimestamp = "Timestamp"
)

// ErrMissingHeaders is returned when the sheet export lacks one of the
// required column headers.
var ErrMissingHeaders = errors.New("sheet: required headers not found")

// Importer fetches a published comma-delimited sheet export and parses it
// into signup entries.
type Importer struct {
	httpClient *http.Client
	URL        string
}

// NewImporter creates an Importer for the given published CSV URL.
func NewImporter(csvURL string) *Importer {
	return &Importer{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		URL:        csvURL,
	}
}

// Fetch downloads the sheet export and parses it. On a header mismatch the
// error is returned alongside an empty result; malformed rows are skipped,
// never fatal.
func (i *Importer) Fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK HTTP status fetching sheet: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet body: %w", err)
	}

	return Parse(string(body))
}

// Parse turns raw delimited text into entries. The first non-blank line is the
// header row; each subsequent line is parsed with quote-escaping and skipped
// (with a log line) when its shape does not match.
func Parse(csvText string) ([]Entry, error) {
	var lines []string
	for _, line := range strings.Split(csvText, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrMissingHeaders
	}

	headers := parseFields(lines[0])
	nameIdx, rolesIdx, timestampIdx := -1, -1, -1
	for i, h := range headers {
		switch h {
		case headerName:
			nameIdx = i
		case headerRoles:
			rolesIdx = i
		case headerTimestamp:
			timestampIdx = i
		}
	}
	if nameIdx == -1 || rolesIdx == -1 {
		log.Error("Sheet headers not found", "want_name", headerName, "want_roles", headerRoles, "got", headers)
		return nil, ErrMissingHeaders
	}

	entries := []Entry{}
	for _, line := range lines[1:] {
		values := parseFields(line)
		if len(values) != len(headers) {
			log.Warn("Skipping malformed row (mismatched columns)", "row", line)
			continue
		}

		ign := values[nameIdx]
		name, tag, found := strings.Cut(ign, "#")
		name = strings.TrimSpace(name)
		tag = strings.TrimSpace(tag)
		if !found || name == "" || tag == "" {
			log.Warn("Skipping row, invalid name/tag", "ign", ign)
			continue
		}

		entry := Entry{
			Name:  name,
			Tag:   tag,
			Roles: values[rolesIdx],
		}
		if timestampIdx != -1 {
			entry.Timestamp = values[timestampIdx]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseFields splits one delimited line into trimmed fields. A field may be
// wrapped in double quotes; inside a quoted span a doubled quote decodes to
// one literal quote, and commas are not separators.
func parseFields(line string) []string {
	var fields []string
	var field strings.Builder
	inQuote := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '"':
			if inQuote && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuote = !inQuote
			}
		case ',':
			if inQuote {
				field.WriteByte(c)
			} else {
				fields = append(fields, strings.TrimSpace(field.String()))
				field.Reset()
			}
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}
