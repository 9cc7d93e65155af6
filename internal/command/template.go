// Package command turns a text/template into a grid.Mapper, so the CLI can
// describe per-window commands such as
//
//	ping 10.1.0.{{add (mul .Index 2) 3}}
package command

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/timvw/screen-array/internal/grid"
)

// Data is what a template sees for one window.
type Data struct {
	Index    int
	Row      int
	Col      int
	Width    int
	Height   int
	Capacity int
	Session  string
}

var errDivideByZero = errors.New("division by zero")

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"mul": func(a, b int) int { return a * b },
	"div": func(a, b int) (int, error) {
		if b == 0 {
			return 0, errDivideByZero
		}
		return a / b, nil
	},
	"mod": func(a, b int) (int, error) {
		if b == 0 {
			return 0, errDivideByZero
		}
		return a % b, nil
	},
}

// Template maps window indices to commands by executing a template.
type Template struct {
	tmpl    *template.Template
	grid    *grid.Grid
	session string

	mu  sync.Mutex
	err error
}

// Compile parses text for use against g in session.
func Compile(text, session string, g *grid.Grid) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("command template is empty")
	}
	tmpl, err := template.New("command").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse command template: %w", err)
	}
	return &Template{tmpl: tmpl, grid: g, session: session}, nil
}

// Render executes the template for window index.
func (t *Template) Render(index int) (string, error) {
	pos := t.grid.Position(index)
	data := Data{
		Index:    index,
		Row:      pos.Row,
		Col:      pos.Col,
		Width:    t.grid.Width(),
		Height:   t.grid.Height(),
		Capacity: t.grid.Capacity(),
		Session:  t.session,
	}
	var b strings.Builder
	if err := t.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render command for window %d: %w", index, err)
	}
	return b.String(), nil
}

// Command implements grid.Mapper. A render failure yields an empty command
// and is kept for Err.
func (t *Template) Command(index int) string {
	out, err := t.Render(index)
	if err != nil {
		t.mu.Lock()
		if t.err == nil {
			t.err = err
		}
		t.mu.Unlock()
		return ""
	}
	return out
}

// Err returns the first render failure seen by Command.
func (t *Template) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Check renders every index up front so that a broken template is caught
// before any command reaches the session.
func (t *Template) Check(indices []int) error {
	for _, i := range indices {
		if _, err := t.Render(i); err != nil {
			return err
		}
	}
	return nil
}
