// Package calendar exports contract key dates as iCalendar events.
package calendar

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Ensure ICSExporter implements the interface.
var _ driven.CalendarExporter = (*ICSExporter)(nil)

// uidNamespace scopes event UIDs so re-exporting a date yields the same UID.
var uidNamespace = uuid.MustParse("6f1c2b9e-4a43-4c8e-9d9f-2f6a3c1d7e10")

// maxLineOctets is the iCalendar content line limit, excluding CRLF.
const maxLineOctets = 75

// ICSExporter writes one all-day VEVENT per key date.
type ICSExporter struct {
	now func() time.Time
}

// NewICSExporter creates an exporter stamping events with now.
func NewICSExporter(now func() time.Time) *ICSExporter {
	if now == nil {
		now = time.Now
	}
	return &ICSExporter{now: now}
}

// Extension returns the file extension for iCalendar files.
func (e *ICSExporter) Extension() string {
	return ".ics"
}

// Export writes a calendar holding the key date of the named document.
// The date must be YYYY-MM-DD.
func (e *ICSExporter) Export(_ context.Context, documentName string, date domain.KeyDate, w io.Writer) error {
	day, err := time.Parse(time.DateOnly, date.Date)
	if err != nil {
		return fmt.Errorf("%w: key date %q is not YYYY-MM-DD", domain.ErrInvalidInput, date.Date)
	}

	uid := uuid.NewSHA1(uidNamespace, []byte(documentName+"\x00"+date.Date+"\x00"+date.Description))

	bw := bufio.NewWriter(w)
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//contractai//key dates//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uid.String() + "@contractai",
		"DTSTAMP:" + e.now().UTC().Format("20060102T150405Z"),
		"DTSTART;VALUE=DATE:" + day.Format("20060102"),
		"DTEND;VALUE=DATE:" + day.AddDate(0, 0, 1).Format("20060102"),
		"SUMMARY:" + escapeText(date.Description),
		"DESCRIPTION:" + escapeText("Key date from "+documentName),
		"TRANSP:TRANSPARENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, line := range lines {
		if _, err := bw.WriteString(fold(line)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FileName returns a file name for the exported key date.
func FileName(documentName string, date domain.KeyDate) string {
	base := strings.TrimSuffix(documentName, pathExt(documentName))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-") + "-" + date.Date + ".ics"
}

func pathExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// escapeText escapes a TEXT property value.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// fold splits a content line into CRLF-terminated chunks of at most 75 octets.
// Continuation lines start with a space and never split a UTF-8 sequence.
func fold(line string) string {
	var b strings.Builder
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8Start(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		limit = maxLineOctets - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
	return b.String()
}

func utf8Start(c byte) bool {
	return c&0xC0 != 0x80
}
