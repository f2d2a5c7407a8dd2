package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/domain"
)

// Parse reads a description from r and builds the automaton.
func Parse(r io.Reader) (*domain.Automaton, error) {
	lines, err := file.Scan(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}
	return Build(lines)
}

// ParseString is Parse over an in-memory description.
func ParseString(description string) (*domain.Automaton, error) {
	return Parse(strings.NewReader(description))
}

// Build constructs the automaton from the significant lines of a description.
func Build(lines []string) (*domain.Automaton, error) {
	b := &builder{lines: lines, draft: domain.NewDraft()}
	if err := b.run(); err != nil {
		return nil, err
	}
	return b.draft.Freeze()
}

type builder struct {
	lines []string
	pos   int
	draft *domain.Draft
}

// next returns the next line or a MissingX error when the input is exhausted.
func (b *builder) next(missing domain.ErrorKind) (string, error) {
	if b.pos >= len(b.lines) {
		return "", &domain.LoadError{Kind: missing}
	}
	line := b.lines[b.pos]
	b.pos++
	return line, nil
}

// at stamps err with the current line number if it is a load error.
func (b *builder) at(err error) error {
	if le, ok := domain.AsLoadError(err); ok && le.Line == 0 {
		le.Line = b.pos
	}
	return err
}

func (b *builder) run() error {
	startLine, err := b.next(domain.MissingStartState)
	if err != nil {
		return err
	}
	start := strings.TrimSpace(startLine)

	statesLine, err := b.next(domain.MissingStateList)
	if err != nil {
		return err
	}
	for _, name := range strings.Fields(statesLine) {
		if err := b.draft.AddState(name); err != nil {
			return b.at(err)
		}
	}
	if err := b.draft.SetStart(start); err != nil {
		return b.at(err)
	}

	symbolsLine, err := b.next(domain.MissingSymbolList)
	if err != nil {
		return err
	}
	for _, tok := range strings.Fields(symbolsLine) {
		if err := b.draft.AddSymbol(tok); err != nil {
			return b.at(err)
		}
	}

	finishLine, err := b.next(domain.MissingFinishList)
	if err != nil {
		return err
	}
	for _, name := range strings.Fields(finishLine) {
		if err := b.draft.MarkAccepting(name); err != nil {
			return b.at(err)
		}
	}

	for b.pos < len(b.lines) {
		line, _ := b.next("")
		f := strings.Fields(line)
		switch {
		case len(f) == 0:
			continue
		case len(f) < 3:
			return b.at(&domain.LoadError{Kind: domain.MalformedTransition, Tokens: f})
		}
		if err := b.draft.AddTransition(f[0], f[1], f[2]); err != nil {
			return b.at(err)
		}
	}
	return nil
}
