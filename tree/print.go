// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package tree

import (
	"fmt"
	"io"
	"strings"

	"dbohdan.com/dirtree/list"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	Indent       = "│   "
	IndentEmpty  = "    "
	Connector    = "├── "
	ConnectorEnd = "└── "
)

// Printer renders a built tree as text.
type Printer struct {
	w        io.Writer
	dirStyle *lipgloss.Style
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithStyle renders directory names with style.
func WithStyle(style lipgloss.Style) PrinterOption {
	return func(p *Printer) {
		p.dirStyle = &style
	}
}

// NewPrinter returns a Printer that writes to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// DirStyle returns the style for directory names with colors forced to
// the ANSI profile, regardless of what w is connected to.
// Tabs in names are kept as they are.
func DirStyle(w io.Writer) lipgloss.Style {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI)

	return renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("4")).
		TabWidth(lipgloss.NoTabConversion)
}

// PrintTree prints the name of the root entry followed by its children.
func (p *Printer) PrintTree(root *list.List[Entry]) error {
	for e := root.Front(); e != nil; e = e.Next() {
		if _, err := fmt.Fprintf(p.w, "%s\n", p.name(e.Value)); err != nil {
			return err
		}

		if e.Value.Children != nil {
			if err := p.Print(e.Value.Children, nil); err != nil {
				return err
			}
		}
	}

	return nil
}

// Print writes one line per entry of children, descending into directories.
// prefixes holds the indentation of every enclosing depth, outermost first.
func (p *Printer) Print(children *list.List[Entry], prefixes []string) error {
	indent := strings.Join(prefixes, "")

	for e := children.Front(); e != nil; e = e.Next() {
		last := e.Next() == nil

		connector := Connector
		if last {
			connector = ConnectorEnd
		}

		if _, err := fmt.Fprintf(p.w, "%s%s%s\n", indent, connector, p.name(e.Value)); err != nil {
			return err
		}

		if e.Value.Children == nil {
			continue
		}

		next := Indent
		if last {
			next = IndentEmpty
		}

		prefixes = append(prefixes, next)
		if err := p.Print(e.Value.Children, prefixes); err != nil {
			return err
		}
		prefixes = prefixes[:len(prefixes)-1]
	}

	return nil
}

func (p *Printer) name(entry Entry) string {
	if p.dirStyle == nil || !entry.IsDir() {
		return entry.Name
	}

	return p.dirStyle.Render(entry.Name)
}
