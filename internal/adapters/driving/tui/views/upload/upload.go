// Package upload provides the view that loads contracts and switches between them.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// View is the upload view: a path input above the loaded documents.
type View struct {
	styles    *styles.Styles
	input     *input.PromptInput
	workspace driving.WorkspaceService
	documents driving.DocumentService
	ingest    driving.IngestService
	ctx       context.Context

	cursor  int
	message string
	err     error
	width   int
	height  int
}

// NewView creates a new upload view.
func NewView(
	s *styles.Styles,
	workspace driving.WorkspaceService,
	documents driving.DocumentService,
	ingest driving.IngestService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		input:     input.NewPromptInput(s, "File", "path/to/contract.txt"),
		workspace: workspace,
		documents: documents,
		ingest:    ingest,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.DocumentLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.message = ""
			return v, nil
		}
		v.err = nil
		v.message = fmt.Sprintf("Loaded %s", msg.Name)
		v.cursor = v.activeIndex()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return v, v.submit()
		case "up":
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil
		case "down":
			if v.cursor < v.count()-1 {
				v.cursor++
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit loads the typed path, or activates the document under the cursor
// when the input is empty.
func (v *View) submit() tea.Cmd {
	path := strings.TrimSpace(v.input.Value())
	if path != "" {
		v.input.Reset()
		v.message = "Loading " + path + "..."
		v.err = nil
		return LoadFile(v.ctx, v.ingest, v.workspace, expandHome(path))
	}

	docs, err := v.documents.List(v.ctx)
	if err != nil {
		v.err = err
		return nil
	}
	if v.cursor < 0 || v.cursor >= len(docs) {
		return nil
	}
	if err := v.documents.SetActive(v.ctx, docs[v.cursor].ID); err != nil {
		v.err = err
		return nil
	}
	v.err = nil
	v.message = "Switched to " + docs[v.cursor].Name
	return nil
}

// LoadFile returns a command that ingests path and loads it into the workspace.
func LoadFile(
	ctx context.Context,
	ingest driving.IngestService,
	workspace driving.WorkspaceService,
	path string,
) tea.Cmd {
	return func() tea.Msg {
		in, err := ingest.FromFile(ctx, path)
		if err != nil {
			return messages.DocumentLoaded{Path: path, Err: err}
		}
		id, err := workspace.Load(ctx, *in)
		return messages.DocumentLoaded{Path: path, ID: id, Name: in.Name, Err: err}
	}
}

// View renders the upload view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Load a contract"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("Type a path to a .txt, .md or .html file and press enter."))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	} else if v.message != "" {
		b.WriteString(v.styles.Success.Render(v.message))
		b.WriteString("\n\n")
	}

	docs, err := v.documents.List(v.ctx)
	if err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + err.Error()))
		return b.String()
	}
	if len(docs) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents loaded yet."))
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Loaded documents (%d)", len(docs))))
	b.WriteString("\n\n")
	activeID := v.activeID()
	for i, d := range docs {
		indicator := "  "
		if i == v.cursor {
			indicator = "> "
		}
		name := v.styles.Normal.Render(d.Name)
		if d.ID == activeID {
			name = v.styles.Selected.Render(d.Name) + v.styles.Muted.Render(" (active)")
		}
		b.WriteString(indicator + name + "\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] choose  [enter] with an empty path switches document"))
	return b.String()
}

func (v *View) count() int {
	docs, err := v.documents.List(v.ctx)
	if err != nil {
		return 0
	}
	return len(docs)
}

func (v *View) activeID() string {
	doc, err := v.documents.Active(v.ctx)
	if err != nil || doc == nil {
		return ""
	}
	return doc.ID
}

func (v *View) activeIndex() int {
	docs, err := v.documents.List(v.ctx)
	if err != nil {
		return 0
	}
	activeID := v.activeID()
	for i, d := range docs {
		if d.ID == activeID {
			return i
		}
	}
	return 0
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
}

// Focus focuses the path input.
func (v *View) Focus() tea.Cmd {
	return v.input.Focus()
}

// Cursor returns the index of the highlighted document.
func (v *View) Cursor() int {
	return v.cursor
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
