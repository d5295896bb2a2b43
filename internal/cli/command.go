package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/GustavoCaso/expense-tracker/internal/expense"
	"github.com/GustavoCaso/expense-tracker/internal/options"
	"github.com/GustavoCaso/expense-tracker/internal/util"
)

type Command interface {
	Description() string
	Usage() string
	Run(tracker *expense.Tracker, opts map[string]string, out io.Writer) error
}

// App dispatches a command line to one of its commands.
type App struct {
	Name     string
	Commands map[string]Command
	Tracker  *expense.Tracker
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run executes args, the command line without the program name, and
// returns the process exit status.
func (a *App) Run(args []string) int {
	if len(args) == 0 || isHelp(args[0]) {
		a.PrintUsage()
		return 0
	}

	command, ok := a.Commands[args[0]]
	if !ok {
		a.PrintUsage()
		return 0
	}

	opts, err := parseOptions(args[1:])
	if err == nil {
		err = command.Run(a.Tracker, opts, a.Stdout)
	}

	if err != nil {
		fmt.Fprintln(a.Stderr, util.ColorOutput(err.Error(), "red"))
		return 1
	}

	return 0
}

func (a *App) PrintUsage() {
	fmt.Fprintf(a.Stdout, "usage: %s <command> [options]\n\n", a.Name)
	fmt.Fprintln(a.Stdout, "commands:")

	names := make([]string, 0, len(a.Commands))
	for name := range a.Commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		c := a.Commands[name]
		fmt.Fprintf(a.Stdout, "  %-8s %s\n", name, c.Description())
		fmt.Fprintf(a.Stdout, "  %-8s %s %s\n", "", a.Name, c.Usage())
	}
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// parseOptions flattens the arguments back into an option string. Commands
// without arguments get an empty set of options.
func parseOptions(args []string) (map[string]string, error) {
	optionString := strings.Join(args, " ")
	if strings.TrimSpace(optionString) == "" {
		return map[string]string{}, nil
	}

	return options.Parse(optionString)
}
