// Package menu maps menu keys to the lab tasks and runs the line-based
// console loop over them.
package menu

import (
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/strlab/foundation/core/errors"
	mdwlog "github.com/msto63/strlab/foundation/core/log"
	"github.com/msto63/strlab/foundation/utils/stringx"
	"github.com/msto63/strlab/internal/report"
	"github.com/msto63/strlab/pkg/bench"
	"github.com/msto63/strlab/pkg/parens"
	"github.com/msto63/strlab/pkg/words"
)

// Keys of the default table
const (
	KeySequence      = "1"
	KeyConcatStrict  = "2"
	KeyBuilderStrict = "3"
	KeyConcatIgnore  = "4"
	KeyBuilderIgnore = "5"
	KeyParens        = "6"
	KeyExit          = "0"
)

const (
	defaultMaxN          = 50000
	invalidChoiceMessage = "Invalid choice. Please enter a number from the menu."
	invalidNumberMessage = "Error! Invalid input"
	exitMessage          = "Exiting program..."
	validParensMessage   = "Input is valid"
	invalidParensMessage = "Input is invalid"
)

// Outcome is what a task produced
type Outcome struct {
	Lines  []string
	Report *bench.Report
}

// Task is one menu entry
type Task struct {
	Key    string
	Title  string
	Prompt string

	// Run executes the task for one line of input. Nil for the exit entry.
	Run func(input string) (Outcome, error)

	// Retry asks the loop to prompt again after an input error
	Retry bool
}

// IsExit reports whether choosing the task ends the loop
func (t Task) IsExit() bool {
	return t.Run == nil
}

// Table is an ordered set of tasks addressed by key
type Table struct {
	tasks  []Task
	logger *mdwlog.Logger
}

// NewTable creates a table from tasks. Later tasks replace earlier ones
// with the same key.
func NewTable(tasks ...Task) *Table {
	t := &Table{logger: mdwlog.NewNop()}
	for _, task := range tasks {
		t.Add(task)
	}
	return t
}

// Add inserts or replaces a task
func (t *Table) Add(task Task) {
	for i := range t.tasks {
		if t.tasks[i].Key == task.Key {
			t.tasks[i] = task
			return
		}
	}
	t.tasks = append(t.tasks, task)
}

// Lookup returns the task for key, ignoring surrounding whitespace
func (t *Table) Lookup(key string) (Task, bool) {
	key = strings.TrimSpace(key)
	for _, task := range t.tasks {
		if task.Key == key {
			return task, true
		}
	}
	return Task{}, false
}

// Tasks returns the tasks in menu order: numbered tasks ascending, the exit
// entry last.
func (t *Table) Tasks() []Task {
	tasks := make([]Task, len(t.tasks))
	copy(tasks, t.tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].IsExit() != tasks[j].IsExit() {
			return !tasks[i].IsExit()
		}
		return tasks[i].Key < tasks[j].Key
	})
	return tasks
}

// Options configures the default table
type Options struct {
	Harness          *bench.Harness
	Logger           *mdwlog.Logger
	MaxN             int
	MaxSequenceChars int
	NormalizeNFC     bool
}

// DefaultTable builds the standard lab menu
func DefaultTable(opts Options) *Table {
	if opts.Harness == nil {
		opts.Harness = bench.New(bench.WithLogger(opts.Logger))
	}
	if opts.MaxN <= 0 {
		opts.MaxN = defaultMaxN
	}

	t := NewTable(
		Task{
			Key:    KeySequence,
			Title:  "Task 1: Generate Number Sequence (4 methods + performance test)",
			Prompt: "Enter a positive integer n: ",
			Run:    sequenceTask(opts),
			Retry:  true,
		},
		transformTask(KeyConcatStrict, words.Concat, words.Strict, opts),
		transformTask(KeyBuilderStrict, words.Builder, words.Strict, opts),
		transformTask(KeyConcatIgnore, words.Concat, words.IgnorePunctuation, opts),
		transformTask(KeyBuilderIgnore, words.Builder, words.IgnorePunctuation, opts),
		Task{
			Key:    KeyParens,
			Title:  "Task 15: Check if all parenthesis are closed",
			Prompt: "Input something: ",
			Run:    parensTask,
		},
		Task{
			Key:   KeyExit,
			Title: "Exit",
		},
	)
	if opts.Logger != nil {
		t.logger = opts.Logger
	}
	return t
}

// ParseN parses a sequence length and checks it against maxN
func ParseN(input string, maxN int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.InvalidInput(errors.ModuleMenu, "ParseN", input, "a positive integer")
	}
	if n < 1 {
		return 0, errors.InvalidArgument(errors.ModuleMenu, "ParseN", "n", n, "n >= 1")
	}
	if maxN > 0 && n > maxN {
		return 0, errors.OutOfRange(errors.ModuleMenu, "ParseN", n, 1, maxN)
	}
	return n, nil
}

func sequenceTask(opts Options) func(string) (Outcome, error) {
	return func(input string) (Outcome, error) {
		n, err := ParseN(input, opts.MaxN)
		if err != nil {
			return Outcome{}, err
		}

		rep, err := opts.Harness.Measure(n)
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{
			Lines:  report.Benchmark(rep, opts.MaxSequenceChars),
			Report: rep,
		}, nil
	}
}

func transformTask(key string, strategy words.Strategy, mode words.PunctuationMode, opts Options) Task {
	variant := "string"
	if strategy == words.Builder {
		variant = "strings.Builder"
	}
	punctuation := "no punctuation"
	prompt := "Enter a sentence (no punctuation):"
	if mode == words.IgnorePunctuation {
		punctuation = "with punctuation"
		prompt = "Enter a sentence (can include punctuation):"
	}
	label := variant + ", " + punctuation

	return Task{
		Key:    key,
		Title:  "Task 2: Palindrome/Reverse Words (" + label + ")",
		Prompt: prompt + " ",
		Run: func(input string) (Outcome, error) {
			if opts.NormalizeNFC {
				input = stringx.NormalizeNFC(input)
			}
			result := words.TransformWith(strategy, input, mode)
			return Outcome{Lines: []string{"Result (" + label + "): " + result}}, nil
		},
	}
}

func parensTask(input string) (Outcome, error) {
	if parens.IsBalanced(input) {
		return Outcome{Lines: []string{validParensMessage}}, nil
	}
	return Outcome{Lines: []string{invalidParensMessage}}, nil
}
