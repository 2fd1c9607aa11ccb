package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/vovakirdan/hexthree/internal/core"
)

var errNotTerminal = errors.New("stdout is not a terminal; use 'hexthree serve' for remote play")

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() (core.RuntimeConfig, error) {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return core.RuntimeConfig{}, errNotTerminal
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(fd)); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}
