package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/willabides/kongplete"
)

type Globals struct {
	Verbosity int    `help:"increase verbosity of logging" short:"v" type:"counter" default:"0"`
	Color     string `help:"colorize section labels" enum:"auto,always,never" default:"auto" env:"LVGRID_COLOR"`
}

// aurora resolves the color mode against the terminal attached to stdout.
func (t Globals) aurora() aurora.Aurora {
	switch t.Color {
	case "always":
		return aurora.NewAurora(true)
	case "never":
		return aurora.NewAurora(false)
	default:
		return aurora.NewAurora(isatty.IsTerminal(os.Stdout.Fd()))
	}
}

func (t Globals) debugf(format string, args ...any) {
	if t.Verbosity > 0 {
		log.Printf(format, args...)
	}
}

type shellcli struct {
	Globals
	Demo               demoCmd                      `cmd:"" default:"withargs" help:"construct a matrix and exercise every operation"`
	Version            versionCmd                   `cmd:"" help:"display versioning information"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"install shell completions"`
}

// newParser builds the command line parser for cli; options are applied
// after the defaults.
func newParser(cli *shellcli, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(
		cli,
		append([]kong.Option{
			kong.Name("lvgrid"),
			kong.Description("demonstration driver for the lvgrid matrix package"),
			kong.Vars{
				"vars_rows":  "7",
				"vars_cols":  "3",
				"vars_fill":  "1",
				"vars_lower": "0",
				"vars_upper": "100",
			},
			kong.UsageOnError(),
			kong.Bind(&cli.Globals),
		}, options...)...,
	)
}

func main() {
	var (
		err    error
		ctx    *kong.Context
		cli    shellcli
		parser *kong.Kong
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	if parser, err = newParser(&cli); err != nil {
		log.Fatalln(err)
	}

	kongplete.Complete(parser)

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(cli.aurora().Red("ERROR"), err)
		os.Exit(1)
	}

	if err = ctx.Run(); err != nil {
		log.Println(cli.aurora().Red("ERROR"), err)
		os.Exit(1)
	}
}
