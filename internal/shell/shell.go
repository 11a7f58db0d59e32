// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell runs the interactive menu for adding and searching products.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/estore-search/internal/catalog"
	"github.com/pdiddy/estore-search/internal/prompt"
	"github.com/pdiddy/estore-search/internal/search"
	"github.com/pdiddy/estore-search/pkg/types"
)

const (
	mainMenu = `Choose from the following options, or press 0 to quit
(1) Add
(2) Search`

	addMenu = `Choose from the following options, or press 0 to return to the main menu
(1) Add book
(2) Add electronic`
)

const (
	choiceQuit = 0
	choiceAdd  = 1
	choiceFind = 2

	choiceBack       = 0
	choiceBook       = 1
	choiceElectronic = 2
)

// Shell drives one interactive session over a catalog.
type Shell struct {
	cat    *catalog.Catalog
	prompt *prompt.Prompter
	out    io.Writer
	opts   search.Options
}

// New returns a Shell reading answers from in and writing to out.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer, cfg types.Config) *Shell {
	return &Shell{
		cat:    cat,
		prompt: prompt.New(in, out, cfg.Shell.MaxAttempts),
		out:    out,
		opts:   search.OptionsFromConfig(cfg.Search),
	}
}

// Run shows the main menu until the user quits or input ends. Only input
// errors are returned; validation failures are reported and the menu is
// shown again.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to EStore Search")
	fmt.Fprintln(s.out)

	err := s.mainLoop()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) mainLoop() error {
	for {
		choice, err := s.prompt.Choice(mainMenu, choiceQuit, choiceFind)
		if err != nil {
			return err
		}
		switch choice {
		case choiceQuit:
			return nil
		case choiceAdd:
			if err := s.addLoop(); err != nil {
				return err
			}
		case choiceFind:
			if err := s.search(); err != nil {
				return err
			}
		}
	}
}

func (s *Shell) addLoop() error {
	for {
		choice, err := s.prompt.Choice(addMenu, choiceBack, choiceElectronic)
		if err != nil {
			return err
		}
		switch choice {
		case choiceBack:
			return nil
		case choiceBook:
			err = s.addBook()
		case choiceElectronic:
			err = s.addElectronic()
		}
		if err := s.abandon(err); err != nil {
			return err
		}
	}
}

// abandon reports an abandoned operation and swallows it. Input errors pass
// through so the session can end.
func (s *Shell) abandon(err error) error {
	switch {
	case errors.Is(err, prompt.ErrTooManyAttempts):
		slog.Info("entry abandoned", "max_attempts", s.prompt.MaxAttempts())
		fmt.Fprintln(s.out, "Too many attempts!")
		return nil
	case errors.Is(err, catalog.ErrDuplicateID):
		fmt.Fprintln(s.out, err)
		return nil
	}
	return err
}

func (s *Shell) addBook() error {
	info, err := s.readInfo(types.KindBook)
	if err != nil {
		return err
	}
	author, err := s.readText("Enter book author:")
	if err != nil {
		return err
	}
	publisher, err := s.readText("Enter book publisher:")
	if err != nil {
		return err
	}

	b, err := types.NewBook(info, author, publisher)
	if err != nil {
		return err
	}
	if err := s.cat.AddBook(b); err != nil {
		return err
	}
	slog.Info("product added", "kind", b.Kind(), "id", b.ID())
	fmt.Fprintf(s.out, "Book %s added.\n", b.ID())
	return nil
}

func (s *Shell) addElectronic() error {
	info, err := s.readInfo(types.KindElectronic)
	if err != nil {
		return err
	}
	maker, err := s.readText("Enter electronic maker:")
	if err != nil {
		return err
	}

	e, err := types.NewElectronic(info, maker)
	if err != nil {
		return err
	}
	if err := s.cat.AddElectronic(e); err != nil {
		return err
	}
	slog.Info("product added", "kind", e.Kind(), "id", e.ID())
	fmt.Fprintf(s.out, "Electronic %s added.\n", e.ID())
	return nil
}

// readInfo prompts for the fields every product shares. The ID prompt also
// rejects IDs already used by any product in the catalog.
func (s *Shell) readInfo(kind types.Kind) (types.Info, error) {
	var (
		id    string
		name  string
		year  int
		price float64
	)

	err := s.prompt.Field(fmt.Sprintf("Enter %s id:", kind), func(line string) error {
		v, err := types.ValidateID(line)
		if err != nil {
			return err
		}
		if s.cat.Contains(v) {
			return fmt.Errorf("%w: %s", catalog.ErrDuplicateID, v)
		}
		id = v
		return nil
	})
	if err != nil {
		return types.Info{}, err
	}

	err = s.prompt.Field(fmt.Sprintf("Enter %s name:", kind), func(line string) error {
		if strings.TrimSpace(line) == "" {
			return fmt.Errorf("%w: name must not be empty", types.ErrInvalidName)
		}
		name = line
		return nil
	})
	if err != nil {
		return types.Info{}, err
	}

	err = s.prompt.Field(fmt.Sprintf("Enter %s year:", kind), func(line string) error {
		v, err := types.ParseYear(line)
		year = v
		return err
	})
	if err != nil {
		return types.Info{}, err
	}

	err = s.prompt.Field(fmt.Sprintf("Enter %s price (leave blank for none):", kind), func(line string) error {
		v, err := types.ParsePrice(line)
		price = v
		return err
	})
	if err != nil {
		return types.Info{}, err
	}

	return types.NewInfo(id, name, year, price)
}

func (s *Shell) readText(label string) (string, error) {
	line, err := s.prompt.Line(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
