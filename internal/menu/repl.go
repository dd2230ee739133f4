package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
	mdwlog "github.com/msto63/strlab/foundation/core/log"
)

// Render returns the menu listing
func (t *Table) Render() string {
	var b strings.Builder
	b.WriteString("# List of Tasks\n")
	for _, task := range t.Tasks() {
		fmt.Fprintf(&b, "    %s. %s\n", task.Key, task.Title)
	}
	return b.String()
}

// REPL prints the menu, reads a choice and runs the chosen task until the
// exit entry is chosen or in reaches EOF. Only write errors are returned.
func (t *Table) REPL(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	w := &errWriter{w: out}

	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSuffix(scanner.Text(), "\r"), true
	}

	for w.err == nil {
		w.print(t.Render())
		w.print("Enter task number to run: ")

		choice, ok := readLine()
		if !ok {
			w.println()
			break
		}

		task, found := t.Lookup(choice)
		if !found {
			w.println(invalidChoiceMessage)
			continue
		}
		if task.IsExit() {
			w.println(exitMessage)
			break
		}

		t.logger.Debug("task selected", mdwlog.String("task", task.Key))
		if !t.runTask(task, readLine, w) {
			w.println()
			break
		}
	}

	if err := scanner.Err(); err != nil && w.err == nil {
		return err
	}
	return w.err
}

// runTask prompts for input and runs task. It returns false on EOF.
func (t *Table) runTask(task Task, readLine func() (string, bool), w *errWriter) bool {
	w.println()
	w.print(task.Prompt)

	for {
		input, ok := readLine()
		if !ok {
			return false
		}

		outcome, err := task.Run(input)
		if err != nil {
			if task.Retry && isInputError(err) {
				t.logger.WarnWithErr("input rejected", err, mdwlog.String("task", task.Key))
				w.println(invalidNumberMessage)
				if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
					w.println(errorMessage(err))
				}
				continue
			}
			t.logger.LogError(err)
			w.println("Error: " + errorMessage(err))
			w.println()
			return true
		}

		w.println()
		for _, line := range outcome.Lines {
			w.println(line)
		}
		w.println()
		return true
	}
}

func isInputError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidInput) ||
		mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) ||
		mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}

func errorMessage(err error) string {
	if e, ok := mdwerror.As(err); ok {
		return e.Message()
	}
	return err.Error()
}

// errWriter keeps the first write error and skips later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) println(lines ...string) {
	if len(lines) == 0 {
		ew.print("\n")
		return
	}
	for _, l := range lines {
		ew.print(l + "\n")
	}
}
