package main

import (
	"flag"
	"fmt"
	"os"

	"stocklist/cmd/console/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:5000", "Backend base URL")
	sessionPath := flag.String("session", ui.DefaultSessionPath(), "Path to the persisted session file")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*server, *sessionPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "console error:", err)
		os.Exit(1)
	}
}
