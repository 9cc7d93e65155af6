package grid

import "strconv"

// Kind identifies a screen command.
type Kind int

const (
	// SplitHorizontal splits the active region into a top and a bottom half (screen "split").
	SplitHorizontal Kind = iota
	// SplitVertical splits the active region into a left and a right half (screen "split -v").
	SplitVertical
	// FocusNext moves focus to the next region (screen "focus").
	FocusNext
	// CreateWindow creates a window in the active region (screen "screen").
	CreateWindow
	// SelectWindow shows window Index in the active region (screen "select N").
	SelectWindow
	// ExecCommand runs Command in the active window (screen "exec ...").
	ExecCommand
)

var kindNames = [...]string{
	SplitHorizontal: "split",
	SplitVertical:   "split-v",
	FocusNext:       "focus",
	CreateWindow:    "screen",
	SelectWindow:    "select",
	ExecCommand:     "exec",
}

// String returns a short stable name, suitable for metric attributes.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsLayout reports whether k changes the region layout.
func (k Kind) IsLayout() bool {
	return k <= CreateWindow
}

// Op is a single screen command. Index is only meaningful for SelectWindow,
// Command only for ExecCommand.
type Op struct {
	Kind    Kind
	Index   int
	Command string
}

// String renders the op as the argument of "screen -X".
func (o Op) String() string {
	switch o.Kind {
	case SplitHorizontal:
		return "split"
	case SplitVertical:
		return "split -v"
	case FocusNext:
		return "focus"
	case CreateWindow:
		return "screen"
	case SelectWindow:
		return "select " + strconv.Itoa(o.Index)
	case ExecCommand:
		return "exec " + o.Command
	default:
		return ""
	}
}

// Select returns a SelectWindow op for index i.
func Select(i int) Op { return Op{Kind: SelectWindow, Index: i} }

// Exec returns an ExecCommand op.
func Exec(command string) Op { return Op{Kind: ExecCommand, Command: command} }

// Strings renders every op with Op.String.
func Strings(ops []Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}
