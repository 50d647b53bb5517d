package calendar

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
}

func TestICSExporter_Export(t *testing.T) {
	exporter := NewICSExporter(fixedNow)
	var buf bytes.Buffer

	err := exporter.Export(context.Background(), "lease.txt",
		domain.KeyDate{Date: "2024-12-31", Description: "Expiration of lease.txt"}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20241231\r\n")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250101\r\n")
	assert.Contains(t, out, "DTSTAMP:20240501T123000Z\r\n")
	assert.Contains(t, out, "SUMMARY:Expiration of lease.txt\r\n")
	assert.Contains(t, out, "DESCRIPTION:Key date from lease.txt\r\n")
}

func TestICSExporter_StableUID(t *testing.T) {
	exporter := NewICSExporter(fixedNow)
	date := domain.KeyDate{Date: "2024-06-30", Description: "Renewal notice deadline"}

	var a, b bytes.Buffer
	require.NoError(t, exporter.Export(context.Background(), "msa.md", date, &a))
	require.NoError(t, exporter.Export(context.Background(), "msa.md", date, &b))
	assert.Equal(t, a.String(), b.String())

	var other bytes.Buffer
	require.NoError(t, exporter.Export(context.Background(), "nda.md", date, &other))
	assert.NotEqual(t, uidLine(a.String()), uidLine(other.String()))
}

func uidLine(ics string) string {
	for _, line := range strings.Split(ics, "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			return line
		}
	}
	return ""
}

func TestICSExporter_InvalidDate(t *testing.T) {
	var buf bytes.Buffer
	err := NewICSExporter(fixedNow).Export(context.Background(), "x",
		domain.KeyDate{Date: "end of year", Description: "?"}, &buf)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, buf.Len())
}

func TestICSExporter_Extension(t *testing.T) {
	assert.Equal(t, ".ics", NewICSExporter(nil).Extension())
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `a\, b\; c\\d\ne`, escapeText("a, b; c\\d\ne"))
}

func TestFold(t *testing.T) {
	short := "SUMMARY:short"
	assert.Equal(t, short+"\r\n", fold(short))

	long := "SUMMARY:" + strings.Repeat("x", 200)
	folded := fold(long)
	for _, line := range strings.Split(strings.TrimSuffix(folded, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), maxLineOctets)
	}
	assert.Equal(t, long, strings.ReplaceAll(strings.TrimSuffix(folded, "\r\n"), "\r\n ", ""))
}

func TestFold_KeepsMultibyteRunes(t *testing.T) {
	long := "SUMMARY:" + strings.Repeat("é", 60)
	folded := fold(long)
	unfolded := strings.ReplaceAll(strings.TrimSuffix(folded, "\r\n"), "\r\n ", "")
	assert.Equal(t, long, unfolded)
	for _, line := range strings.Split(folded, "\r\n") {
		assert.True(t, strings.ToValidUTF8(line, "?") == line)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"lease.txt", "lease-2024-12-31.ics"},
		{"Supplier MSA (v2).md", "Supplier-MSA--v2-2024-12-31.ics"},
		{"noext", "noext-2024-12-31.ics"},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.doc, domain.KeyDate{Date: "2024-12-31"}))
		})
	}
}
