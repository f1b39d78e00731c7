package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zephyrtronium/evaluator/internal/keypad"
)

func main() {
	log.SetFlags(0)
	if _, err := tea.NewProgram(keypad.New()).Run(); err != nil {
		log.Fatal(err)
	}
}
