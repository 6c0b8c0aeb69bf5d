// blockedit: drag-and-drop editing of block scripts in the terminal.
//
// Press on a block to pick it up (nested blocks are pulled out of their
// slot), drag, and release over an empty or filled argument slot to drop it
// there. Run with -print to render once and list the drop regions.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	bv "blockview"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func main() {
	configPath := flag.String("config", "", "TOML skin file")
	printOnly := flag.Bool("print", false, "render once and list drop regions")
	flag.Parse()

	cfg := bv.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = bv.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	theme, err := cfg.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	canvas := bv.NewCanvas()
	if err := populate(canvas, theme); err != nil {
		log.Fatal(err)
	}

	fd := int(os.Stdout.Fd())
	if *printOnly || !term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		printCanvas(canvas, width, height)
		return
	}

	p := tea.NewProgram(model{canvas: canvas}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// populate lays out a few sample scripts.
func populate(c *bv.Canvas, theme bv.Theme) error {
	block := func(decl string, kind bv.BlockKind, types ...bv.DataType) (*bv.CompositeView, error) {
		return bv.NewBlock(decl, types, kind, theme)
	}

	hat, err := block("when _flag_ clicked", bv.KindCommand)
	if err != nil {
		return err
	}
	ifElse, err := block("if % then % else %", bv.KindCommand, bv.TypeBoolean, bv.TypeScript, bv.TypeScript)
	if err != nil {
		return err
	}
	less, err := block("% < %", bv.KindPredicate, bv.TypeNumber, bv.TypeNumber)
	if err != nil {
		return err
	}
	sum, err := block("% + %", bv.KindReporter, bv.TypeNumber, bv.TypeNumber)
	if err != nil {
		return err
	}
	say, err := block("say % for % secs", bv.KindCommand, bv.TypeText, bv.TypeNumber)
	if err != nil {
		return err
	}
	random, err := block("pick random % to %", bv.KindReporter, bv.TypeNumber, bv.TypeNumber)
	if err != nil {
		return err
	}
	not, err := block("not %", bv.KindPredicate, bv.TypeBoolean)
	if err != nil {
		return err
	}
	wait, err := block("wait % secs _clock_", bv.KindCommand, bv.TypeNumber)
	if err != nil {
		return err
	}

	less.ReplaceChild(0, sum)
	ifElse.ReplaceChild(0, less)
	ifElse.ReplaceChild(1, say)

	c.Add(hat, image.Pt(2, 1))
	c.Add(ifElse, image.Pt(2, 5))
	c.Add(random, image.Pt(2, 14))
	c.Add(not, image.Pt(30, 14))
	c.Add(wait, image.Pt(2, 17))
	return nil
}

func printCanvas(c *bv.Canvas, width, height int) {
	fmt.Println(c.Assemble(width, height).ANSI())
	for dr := range c.DropRegions() {
		fmt.Println(dr)
	}
}

type drag struct {
	anchor   *bv.Anchor
	grab     image.Point // pointer offset from the anchor position
	produces bv.DataType
	target   *bv.DropRegion
}

type model struct {
	canvas        *bv.Canvas
	width, height int
	drag          *drag
	err           error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.MouseMsg:
		p := image.Pt(msg.X, msg.Y)
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.err = nil
			m.drag, m.err = m.pickUp(p)
		case msg.Action == tea.MouseActionMotion && m.drag != nil:
			m.drag.anchor.SetPosition(p.Sub(m.drag.grab))
			m.drag.target = nil
			if r, ok := m.canvas.DropTarget(p, m.drag.produces, m.drag.anchor); ok {
				m.drag.target = &r
			}
		case msg.Action == tea.MouseActionRelease && m.drag != nil:
			if m.drag.target != nil {
				m.err = m.canvas.Drop(m.drag.anchor, *m.drag.target)
			}
			m.drag = nil
		}
	}
	return m, nil
}

// pickUp starts a drag on the block under p. Holes and labels select the
// block they belong to.
func (m model) pickUp(p image.Point) (*drag, error) {
	_, v, ok := m.canvas.HitTest(p)
	if !ok {
		return nil, nil
	}
	block, ok := v.(*bv.CompositeView)
	if !ok {
		if block, ok = v.Parent().(*bv.CompositeView); !ok {
			return nil, nil
		}
	}
	a, err := m.canvas.Detach(block)
	if err != nil {
		return nil, err
	}
	m.canvas.Raise(a)
	return &drag{
		anchor:   a,
		grab:     p.Sub(a.Position()),
		produces: block.Kind().Produces(),
	}, nil
}

func (m model) View() string {
	if m.width == 0 || m.height < 2 {
		return ""
	}
	out := m.canvas.Assemble(m.width, m.height-1).ANSI() + "\n"
	switch {
	case m.err != nil:
		out += errorStyle.Render(m.err.Error())
	case m.drag != nil && m.drag.target != nil:
		out += targetStyle.Render(fmt.Sprintf("drop into %s", m.drag.target))
	case m.drag != nil:
		out += statusStyle.Render("dragging")
	default:
		out += statusStyle.Render("press a block to drag it, q to quit")
	}
	return out
}
