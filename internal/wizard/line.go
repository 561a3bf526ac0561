package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jnew-dev/jnew/internal/scaffold"
)

// LinePrompter asks questions as numbered menus on a plain reader/writer
// pair. An empty answer or end of input dismisses the prompt.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter returns a prompter reading answers from r and writing
// prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

// SelectKind prints the kinds and reads a choice. A kind may be picked by
// number or by name; anything else re-prompts.
func (p *LinePrompter) SelectKind(_ context.Context, kinds []string) (string, bool, error) {
	fmt.Fprintf(p.w, "\nSelect kind:\n")
	for i, kind := range kinds {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, scaffold.Label(kind))
	}

	for {
		fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(kinds))
		line, ok, err := p.readLine()
		if err != nil || !ok {
			return "", false, err
		}

		if kind, found := pickKind(kinds, line); found {
			return kind, true, nil
		}
		fmt.Fprintf(p.w, "invalid selection %q: choose 1-%d\n", line, len(kinds))
	}
}

// EnterName reads a type name for kind.
func (p *LinePrompter) EnterName(_ context.Context, kind string) (string, bool, error) {
	fmt.Fprintf(p.w, "Name for new %s: ", scaffold.Label(kind))
	return p.readLine()
}

// readLine returns the trimmed next line. ok is false on an empty line or
// end of input.
func (p *LinePrompter) readLine() (string, bool, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

func pickKind(kinds []string, answer string) (string, bool) {
	if num, err := strconv.Atoi(answer); err == nil {
		if num < 1 || num > len(kinds) {
			return "", false
		}
		return kinds[num-1], true
	}

	normalized := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(answer))
	for _, kind := range kinds {
		if kind == normalized {
			return kind, true
		}
	}
	return "", false
}
