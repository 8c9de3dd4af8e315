package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/trezcool/staffroom/core/school"
)

var (
	isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) } // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc    *school.Service
	stdin  io.Reader
	stdout io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.stdout, "Usage:")
	fmt.Fprintln(cli.stdout, "  seed [-indent]                 - print the seed data set as JSON")
	fmt.Fprintln(cli.stdout, "  workload [-teacher ID]         - print the teaching load per teacher")
	fmt.Fprintln(cli.stdout, "  parsetimetable [-file PATH]    - parse a free-text timetable (stdin when no file)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ContinueOnError)
	seedIndent := seedCmd.Bool("indent", false, "Indent the JSON output.")

	workloadCmd := flag.NewFlagSet("workload", flag.ContinueOnError)
	workloadTeacher := workloadCmd.String("teacher", "", "Only print this teacher's load.")

	parseCmd := flag.NewFlagSet("parsetimetable", flag.ContinueOnError)
	parseFile := parseCmd.String("file", "", "The timetable text file. Read from stdin when empty.")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(*seedIndent)
	case "workload":
		if err := workloadCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.workload(*workloadTeacher)
	case "parsetimetable":
		if err := parseCmd.Parse(args[2:]); err != nil {
			return err
		}
		text, err := cli.readTimetable(*parseFile)
		if err != nil {
			return err
		}
		return cli.parseTimetable(text)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) readTimetable(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if isTerminalFunc() {
		fmt.Fprintln(cli.stdout, "Paste the timetable, then press Ctrl-D:")
	}
	data, err := io.ReadAll(cli.stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
