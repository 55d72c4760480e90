package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"appctl/internal/cli/output"
)

type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusMissing
	StatusFailed
)

type item struct {
	name      string
	status    Status
	detail    string
	err       error
	startTime time.Time
	duration  time.Duration
}

// Tracker prints one line per finished image as concurrent registry operations complete.
// All methods are safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	items     []item
	completed int
	verb      string
	writer    io.Writer
	timestamp bool
}

func NewTracker(names []string, verb string) *Tracker {
	return NewTrackerWithWriter(names, verb, os.Stdout, !output.ColorsEnabled())
}

// NewTrackerWithWriter prefixes lines with a clock time when timestamp is set, which suits
// logs collected from non-interactive runs.
func NewTrackerWithWriter(names []string, verb string, writer io.Writer, timestamp bool) *Tracker {
	items := make([]item, len(names))
	for i, name := range names {
		items[i] = item{name: name, status: StatusPending}
	}
	return &Tracker{
		items:     items,
		verb:      verb,
		writer:    writer,
		timestamp: timestamp,
	}
}

func (t *Tracker) StartItem(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items[index].status = StatusRunning
	t.items[index].startTime = time.Now()

	if t.timestamp {
		fmt.Fprintf(t.writer, "  [%s] %s %s...\n", time.Now().Format("15:04:05"), t.verb, t.items[index].name)
	}
}

// CompleteItem records the outcome of an item. A nil error with an empty detail marks the
// image as missing from the registry.
func (t *Tracker) CompleteItem(index int, detail string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	it := &t.items[index]
	it.duration = time.Since(it.startTime)
	it.detail = detail
	it.err = err
	switch {
	case err != nil:
		it.status = StatusFailed
	case detail == "":
		it.status = StatusMissing
	default:
		it.status = StatusSuccess
	}
	t.completed++

	counter := fmt.Sprintf("[%d/%d]", t.completed, len(t.items))
	if t.timestamp {
		counter = fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), counter)
	}

	var line string
	switch it.status {
	case StatusSuccess:
		line = fmt.Sprintf("%s %s %s %s", output.Success(output.SymbolSuccess), output.Dim(counter), it.name, it.detail)
	case StatusMissing:
		line = fmt.Sprintf("%s %s %s not found", output.Warning(output.SymbolWarning), output.Dim(counter), it.name)
	case StatusFailed:
		line = fmt.Sprintf("%s %s %s %s", output.Error(output.SymbolError), output.Dim(counter), it.name, output.Error(err.Error()))
	}
	fmt.Fprintf(t.writer, "  %s %s\n", line, output.Dim(FormatDuration(it.duration)))
}

// Counts returns how many items succeeded, were missing and failed
func (t *Tracker) Counts() (succeeded int, missing int, failed int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, it := range t.items {
		switch it.status {
		case StatusSuccess:
			succeeded++
		case StatusMissing:
			missing++
		case StatusFailed:
			failed++
		}
	}
	return succeeded, missing, failed
}

// FormatDuration renders d with a precision suited to its magnitude
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}
