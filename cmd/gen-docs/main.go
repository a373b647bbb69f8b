package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/sitwatch/internal/cmd"
)

// This small tool generates shell completions and a man page from the
// sitwatch command tree.

const (
	appName        = "sitwatch"
	appDescription = "A terminal timer that tracks sitting versus standing and warns when you have been sitting too long."
)

func main() {
	root := cmd.NewRootCmd("docs")

	if err := writeCompletions(root); err != nil {
		panic(err)
	}
	if err := writeMan(root); err != nil {
		panic(err)
	}
}

func writeCompletions(root *cobra.Command) error {
	base := filepath.Join("docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	if err := root.GenBashCompletionFileV2(filepath.Join(base, appName+".bash"), true); err != nil {
		return err
	}
	if err := root.GenZshCompletionFile(filepath.Join(base, "_"+appName)); err != nil {
		return err
	}
	if err := root.GenFishCompletionFile(filepath.Join(base, appName+".fish"), true); err != nil {
		return err
	}
	return root.GenPowerShellCompletionFileWithDesc(filepath.Join(base, appName+".ps1"))
}

func flagNames(f *pflag.Flag) string {
	names := "\\-\\-" + f.Name
	if f.Shorthand != "" {
		names = "\\-" + f.Shorthand + ", " + names
	}
	if f.Value.Type() != "bool" {
		names += " <" + f.Value.Type() + ">"
	}
	return names
}

func writeMan(root *cobra.Command) error {
	if err := os.MkdirAll("man", 0o755); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"sitwatch\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " - " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n[options]\n.br\n.B " + appName + " watch\n[options]\n")
	b.WriteString(".SH DESCRIPTION\n" + strings.ReplaceAll(root.Long, "\n", " ") + "\n")

	b.WriteString(".SH OPTIONS\n")
	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	visit := func(f *pflag.Flag) {
		b.WriteString(".TP\n\\fB" + flagNames(f) + "\\fR\n" + f.Usage + "\n")
	}
	root.PersistentFlags().VisitAll(visit)
	root.Flags().VisitAll(visit)

	for _, sub := range root.Commands() {
		if sub.Hidden || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		b.WriteString(".SH COMMAND: " + strings.ToUpper(sub.Name()) + "\n")
		b.WriteString(strings.ReplaceAll(sub.Long, "\n", "\n.br\n") + "\n")
		sub.LocalFlags().VisitAll(func(f *pflag.Flag) {
			b.WriteString(".TP\n\\fB" + flagNames(f) + "\\fR\n" + f.Usage + "\n")
		})
	}

	b.WriteString(".SH KEYS\n")
	for _, k := range [][2]string{
		{"space, t", "Switch posture. The timer of the posture you leave restarts from zero."},
		{"r", "Reset both timers and return to sitting."},
		{"h, ?", "Toggle help."},
		{"q", "Quit."},
	} {
		b.WriteString(fmt.Sprintf(".TP\n\\fB%s\\fR\n%s\n", k[0], k[1]))
	}

	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + "\\fR\nStart the interactive TUI.\n")
	b.WriteString(".TP\n\\fB" + appName + " -s 45m\\fR\nWarn after 45 minutes of sitting.\n")
	b.WriteString(".TP\n\\fB" + appName + " watch --report 1m\\fR\nRun headless, printing status every minute.\n")
	b.WriteString(".SH FILES\n.TP\n\\fI$XDG_CONFIG_HOME/sitwatch/config.yaml\\fR\nKeys: max_sitting, max_standing, tick_interval, debug_log.\n")
	return os.WriteFile(filepath.Join("man", appName+".1"), []byte(b.String()), 0o644)
}
