package visualizer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vk/delegatego/delegate"
)

// View selects the report layout.
type View int

const (
	// Default renders one "[index] Function returned ..." line per subscriber.
	Default View = iota
	// List is an alias layout for Default.
	List
	// Table renders an aligned two-column table of index and result.
	Table
)

// String implements fmt.Stringer for View.
func (v View) String() string {
	switch v {
	case List:
		return "list"
	case Table:
		return "table"
	default:
		return "default"
	}
}

// ParseView maps a user-facing view name onto a View. The empty string
// selects Default.
func ParseView(s string) (View, error) {
	switch s {
	case "", "default":
		return Default, nil
	case "list":
		return List, nil
	case "table":
		return Table, nil
	default:
		return Default, fmt.Errorf("unknown view %q: must be 'default', 'list', or 'table'", s)
	}
}

// row is one rendered report line.
type row struct {
	index  int
	result string
}

// Render invokes every subscriber of a void delegate with args and writes
// the report to w. Void subscribers always report "(void)".
func Render[A any](w io.Writer, d *delegate.Delegate[A], args A, view View) error {
	subs := d.Subscribers()
	rows := make([]row, len(subs))
	for i, fn := range subs {
		fn(args)
		rows[i] = row{index: i, result: "(void)"}
	}
	return write(w, rows, view)
}

// RenderValue invokes every subscriber of a value delegate with args and
// writes each individual result to w. Unlike ValueDelegate.InvokeAll, the
// results are reported per subscriber instead of summed.
func RenderValue[A any, R delegate.Addable](w io.Writer, d *delegate.ValueDelegate[A, R], args A, view View) error {
	subs := d.Subscribers()
	rows := make([]row, len(subs))
	for i, fn := range subs {
		text, err := formatValue(i, fn(args))
		if err != nil {
			return err
		}
		rows[i] = row{index: i, result: text}
	}
	return write(w, rows, view)
}

func write(w io.Writer, rows []row, view View) error {
	if view == Table {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tRESULT")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\n", r.index, r.result)
		}
		return tw.Flush()
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "[%d] Function returned %s\n", r.index, r.result); err != nil {
			return err
		}
	}
	return nil
}
