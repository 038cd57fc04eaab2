package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/umairnumplate/noor-ul-masajid/apps/di"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

var (
	isTerminalFunc    = term.IsTerminal   // mockable
	clipboardWriteAll = clipboard.WriteAll // mockable

	errHelp           = errors.New("help provided")
	errAborted        = errors.New("aborted")
	errNotInteractive = errors.New("refusing to delete without confirmation: pass --yes")
)

type commandLine struct {
	svc di.Services
	in  *bufio.Reader
	out io.Writer
	yes bool
}

func newCommandLine(svc di.Services, in io.Reader, out io.Writer) *commandLine {
	return &commandLine{svc: svc, in: bufio.NewReader(in), out: out}
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "madrasa",
		Short:         "Records office of " + cli.svc.Config.AppName,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)
	root.PersistentFlags().BoolVarP(&cli.yes, "yes", "y", false, "do not ask for confirmation")

	root.AddCommand(
		cli.dashboardCmd(),
		cli.studentCmd(),
		cli.teacherCmd(),
		cli.attendanceCmd(),
		cli.graduateCmd(),
		cli.tanzimCmd(),
		cli.feesCmd(),
		cli.announceCmd(),
		cli.reportCmd(),
		cli.messageCmd(),
		cli.tokenCmd(),
		cli.migrateCmd(),
	)
	return root
}

func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func (cli *commandLine) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, a...)
}

func (cli *commandLine) println(a ...interface{}) {
	_, _ = fmt.Fprintln(cli.out, a...)
}

// confirm asks a yes/no question on the terminal, unless --yes was given.
func (cli *commandLine) confirm(question string) error {
	if cli.yes {
		return nil
	}
	if !isTerminalFunc(int(os.Stdin.Fd())) {
		return errNotInteractive
	}
	cli.printf("%s [y/N]: ", question)
	answer, err := cli.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	}
	return errAborted
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

func (cli *commandLine) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	cli.println(t.String())
}

// student looks a student up, suggesting close ids and names when it does not exist.
func (cli *commandLine) student(id string) (student.Student, error) {
	s, err := cli.svc.Students.GetByID(id)
	if err == nil || !errors.Is(err, student.ErrNotFound) {
		return s, err
	}
	students, qerr := cli.svc.Students.QueryAll()
	if qerr != nil {
		return s, err
	}
	if sugg := suggest(id, students); len(sugg) > 0 {
		return s, fmt.Errorf("%w: %q (did you mean %s?)", err, id, strings.Join(sugg, ", "))
	}
	return s, fmt.Errorf("%w: %q", err, id)
}

const suggestionCutoff = 0.6

// suggest ranks students whose id or name resembles `query`.
func suggest(query string, students []student.Student) []string {
	type match struct {
		label string
		ratio float64
	}
	chars := func(s string) []string { return strings.Split(strings.ToLower(s), "") }

	q := chars(query)
	var matches []match
	for _, s := range students {
		best := 0.0
		for _, candidate := range []string{s.ID, s.Name} {
			m := difflib.NewMatcher(q, chars(candidate))
			if r := m.Ratio(); r > best {
				best = r
			}
		}
		if best >= suggestionCutoff {
			matches = append(matches, match{label: fmt.Sprintf("%s (%s)", s.ID, s.Name), ratio: best})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })
	if len(matches) > 3 {
		matches = matches[:3]
	}
	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = m.label
	}
	return labels
}
