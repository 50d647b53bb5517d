// Package keydates provides the view listing the active document's key dates.
package keydates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// FileNamer names the calendar file written for a key date.
type FileNamer func(documentName string, date domain.KeyDate) string

// View lists key dates and exports the one under the cursor.
type View struct {
	styles    *styles.Styles
	documents driving.DocumentService
	calendar  driven.CalendarExporter
	fileName  FileNamer
	exportDir string
	ctx       context.Context

	documentID string
	cursor     int
	message    string
	err        error
	width      int
	height     int
}

// NewView creates a new key dates view. A nil calendar disables export.
func NewView(s *styles.Styles, documents driving.DocumentService, calendar driven.CalendarExporter) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		documents: documents,
		calendar:  calendar,
		fileName:  defaultFileName,
		exportDir: ".",
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithExport sets where calendar files go and how they are named.
func (v *View) WithExport(dir string, name FileNamer) *View {
	v.exportDir = dir
	if name != nil {
		v.fileName = name
	}
	return v
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the key dates view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.KeyDateExported:
		if msg.Err != nil {
			v.err = msg.Err
			v.message = ""
		} else {
			v.err = nil
			v.message = "Wrote " + msg.Path
		}
		return v, nil

	case tea.KeyMsg:
		doc := v.active()
		if doc == nil {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(doc.KeyDates)-1 {
				v.cursor++
			}
		case "e":
			if v.calendar != nil && v.cursor < len(doc.KeyDates) {
				return v, v.export(doc.Name, doc.KeyDates[v.cursor])
			}
		}
	}
	return v, nil
}

func (v *View) export(documentName string, date domain.KeyDate) tea.Cmd {
	ctx, calendar := v.ctx, v.calendar
	path := filepath.Join(v.exportDir, v.fileName(documentName, date))
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return messages.KeyDateExported{Path: path, Err: err}
		}
		err = calendar.Export(ctx, documentName, date, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return messages.KeyDateExported{Path: path, Err: err}
	}
}

// active returns the active document, resetting the cursor when it changed.
func (v *View) active() *domain.Document {
	doc, err := v.documents.Active(v.ctx)
	if err != nil || doc == nil {
		v.documentID = ""
		return nil
	}
	if doc.ID != v.documentID {
		v.documentID = doc.ID
		v.cursor = 0
		v.message = ""
		v.err = nil
	}
	return doc
}

// View renders the key dates view.
func (v *View) View() string {
	doc := v.active()
	if doc == nil {
		return v.styles.Muted.Render("Load a contract to see its key dates.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Key Dates: " + doc.Name))
	b.WriteString("\n\n")

	if len(doc.KeyDates) == 0 {
		b.WriteString(v.styles.Muted.Render("No key dates found for this contract."))
		return b.String()
	}

	for i, kd := range doc.KeyDates {
		indicator := "  "
		line := fmt.Sprintf("%-10s  %s", kd.Date, kd.Description)
		if i == v.cursor {
			indicator = "> "
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(indicator + line + "\n")
	}

	if v.err != nil {
		b.WriteString("\n" + v.styles.Error.Render("Error: "+v.err.Error()) + "\n")
	} else if v.message != "" {
		b.WriteString("\n" + v.styles.Success.Render(v.message) + "\n")
	}
	if v.calendar != nil {
		b.WriteString("\n" + v.styles.Help.Render("[e] export the selected date as "+v.calendar.Extension()))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Cursor returns the index of the highlighted date.
func (v *View) Cursor() int {
	return v.cursor
}

func defaultFileName(documentName string, date domain.KeyDate) string {
	return strings.ReplaceAll(documentName, string(os.PathSeparator), "-") + "-" + date.Date + ".ics"
}
