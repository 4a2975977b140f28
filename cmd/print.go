package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	currentStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✔"), mutedStyle.Render(msg))
}

func printError(msg string, err error) {
	out := errorStyle.Render("✗ " + msg + ":")
	if err != nil {
		out += " " + mutedStyle.Render(err.Error())
	}
	fmt.Println(out)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
