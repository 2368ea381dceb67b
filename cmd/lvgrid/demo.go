package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type demoCmd struct {
	Rows         int    `help:"number of rows" default:"${vars_rows}" env:"LVGRID_ROWS"`
	Cols         int    `help:"number of columns" default:"${vars_cols}" env:"LVGRID_COLS"`
	Fill         int    `help:"initial value of every cell" default:"${vars_fill}" env:"LVGRID_FILL"`
	ElementRow   int    `name:"element-row" help:"row written by the single-element step" default:"1"`
	ElementCol   int    `name:"element-col" help:"column written by the single-element step" default:"2"`
	ElementValue int    `name:"element-value" help:"value written by the single-element step" default:"5"`
	All          int    `help:"value written to every cell by the set-all step" default:"10"`
	Lower        int    `help:"inclusive lower bound for randomization" default:"${vars_lower}" env:"LVGRID_LOWER"`
	Upper        int    `help:"inclusive upper bound for randomization" default:"${vars_upper}" env:"LVGRID_UPPER"`
	Find         int    `help:"value searched before and after sorting" default:"5"`
	Seed         uint64 `help:"random seed, 0 derives one from runtime entropy" default:"0" env:"LVGRID_SEED"`
}

func (t demoCmd) Run(g *Globals) error {
	g.debugf("demo: %dx%d fill=%d seed=%d\n", t.Rows, t.Cols, t.Fill, t.Seed)
	return t.run(os.Stdout, g.aurora())
}

// run executes the demonstration sequence against w. Construction failures
// are reported on w and swallowed so the process still exits cleanly;
// only write failures are returned.
func (t demoCmd) run(w io.Writer, au aurora.Aurora) (err error) {
	// the grid is printed through m.Print*, so w is also the matrix output
	m, err := matrix.New(t.Rows, t.Cols, t.Fill, matrix.WithOutput(w), matrix.WithSeed(t.Seed))
	if err != nil {
		_, err = fmt.Fprintln(w, au.Red("ERROR"), errors.Wrap(err, "unable to construct matrix"))
		return err
	}

	p := &printer{w: w, au: au}

	p.section("Setting matrix to have %d rows, and %d columns of %d.", t.Rows, t.Cols, t.Fill)
	p.grid(m)

	m.Set(t.ElementRow, t.ElementCol, t.ElementValue)
	p.section("Testing Set")
	p.linef("Matrix after setting element (%d, %d) to %d", t.ElementRow, t.ElementCol, t.ElementValue)
	p.grid(m)

	m.SetAll(t.All)
	p.section("Testing SetAll")
	p.linef("Matrix after setting all elements to %d:", t.All)
	p.grid(m)

	m.Randomize(t.Lower, t.Upper)
	p.section("Testing Randomize")
	p.linef("Matrix after randomizing elements between %d and %d:", t.Lower, t.Upper)
	p.grid(m)

	p.section("Testing Find: %d (linear search, not sorted yet)", t.Find)
	p.found(t.Find, m.Find(t.Find))

	m.Sort()
	p.section("Testing Sort")
	p.linef("Matrix after sorting:")
	p.grid(m)

	p.section("Testing PrintRow")
	p.linef("Printing row 1:")
	p.show(func() { m.PrintRow(0) })
	p.blank()

	p.section("Testing RowSum")
	p.linef("Sum of elements in row 1: %v", m.RowSum(0))
	p.blank()

	p.section("Testing PrintColumn")
	p.linef("Printing column 2:")
	p.show(func() { m.PrintColumn(1) })
	p.blank()

	p.section("Testing RowAverage")
	p.linef("Average of elements in row 1: %v", m.RowAverage(0))
	p.blank()

	p.section("Testing Min")
	p.linef("Minimum value in the matrix: %v", m.Min())
	p.blank()

	p.section("Testing Max")
	p.linef("Maximum value in the matrix: %v", m.Max())
	p.blank()

	p.section("Testing Find: %d (binary search after sort)", t.Find)
	p.found(t.Find, m.Find(t.Find))

	p.section("Testing Rotate")
	p.linef("Matrix before rotating:")
	p.grid(m)
	m.Rotate()
	p.linef("Matrix after rotating:")
	p.grid(m)

	return errors.Wrap(p.err, "demo output")
}

// printer latches the first write error so the sequence reads linearly.
type printer struct {
	w   io.Writer
	au  aurora.Aurora
	err error
}

func (t *printer) do(fn func() error) {
	if t.err == nil {
		t.err = fn()
	}
}

// show runs a matrix Print* call, which writes to the matrix's own output
// and drops write errors; it is skipped once an error has latched.
func (t *printer) show(fn func()) {
	t.do(func() error {
		fn()
		return nil
	})
}

func (t *printer) linef(format string, args ...any) {
	t.do(func() error {
		_, err := fmt.Fprintf(t.w, format+"\n", args...)
		return err
	})
}

func (t *printer) blank() {
	t.linef("")
}

func (t *printer) section(format string, args ...any) {
	t.linef("%s", t.au.Cyan(fmt.Sprintf(format, args...)))
}

func (t *printer) grid(m *matrix.Matrix[int]) {
	t.show(m.Print)
	t.blank()
}

func (t *printer) found(v int, ok bool) {
	verdict := t.au.Red("not found")
	if ok {
		verdict = t.au.Green("found")
	}
	t.linef("Value %d %s in the matrix.", v, verdict)
	t.blank()
}
