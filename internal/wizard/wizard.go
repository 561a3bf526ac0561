package wizard

import (
	"context"
	"fmt"
)

// State is a step of the dialog.
type State int

const (
	AwaitingKind State = iota
	AwaitingName
	Ready
	Cancelled
)

func (s State) String() string {
	switch s {
	case AwaitingKind:
		return "awaiting-kind"
	case AwaitingName:
		return "awaiting-name"
	case Ready:
		return "ready"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Prompter answers the dialog's questions. ok is false when the user
// dismissed the prompt.
type Prompter interface {
	SelectKind(ctx context.Context, kinds []string) (kind string, ok bool, err error)
	EnterName(ctx context.Context, kind string) (name string, ok bool, err error)
}

// Outcome is the terminal state of a dialog. Kind and Name are set only
// when State is Ready.
type Outcome struct {
	State State
	Kind  string
	Name  string
}

// Cancelled reports whether the user dismissed the dialog.
func (o Outcome) Cancelled() bool {
	return o.State == Cancelled
}

// Run asks for a kind from kinds and then a name.
func Run(ctx context.Context, p Prompter, kinds []string) (Outcome, error) {
	if len(kinds) == 0 {
		return Outcome{}, fmt.Errorf("no construct kinds configured")
	}
	return drive(ctx, p, kinds, Outcome{State: AwaitingKind})
}

// RunName skips kind selection and only asks for a name.
func RunName(ctx context.Context, p Prompter, kind string) (Outcome, error) {
	return drive(ctx, p, nil, Outcome{State: AwaitingName, Kind: kind})
}

func drive(ctx context.Context, p Prompter, kinds []string, out Outcome) (Outcome, error) {
	for {
		if ctx.Err() != nil && out.State != Ready {
			out.State = Cancelled
		}

		switch out.State {
		case AwaitingKind:
			kind, ok, err := p.SelectKind(ctx, kinds)
			if err != nil {
				return Outcome{}, fmt.Errorf("selecting kind: %w", err)
			}
			if !ok {
				out.State = Cancelled
				continue
			}
			out.Kind = kind
			out.State = AwaitingName

		case AwaitingName:
			name, ok, err := p.EnterName(ctx, out.Kind)
			if err != nil {
				return Outcome{}, fmt.Errorf("reading name: %w", err)
			}
			if !ok {
				out.State = Cancelled
				continue
			}
			out.Name = name
			out.State = Ready

		case Ready:
			return out, nil

		case Cancelled:
			return Outcome{State: Cancelled}, nil

		default:
			return Outcome{}, fmt.Errorf("unexpected wizard state %s", out.State)
		}
	}
}
