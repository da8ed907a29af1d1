package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/harishravi121/speeddial/manager"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive speed-dial shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

const shellHelp = `Commands:
  dirs                       list directory names
  list <dir>                 list entries in a directory
  add <dir> <code> <number>  assign a number to a code
  get <dir> <code>           look up a code
  del <dir> <code>           remove a code
  dial <dir> <code>          dial the number stored under a code
  status                     show fill levels
  help                       show this help
  exit                       quit`

func runShell(cmd *cobra.Command) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "speeddial shell (store %s). Type 'help' for commands.\n", m.StoreID())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "speeddial> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		words, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(out, "parse error: %v\n", err)
			continue
		}

		if words[0] == "exit" || words[0] == "quit" {
			break
		}

		if err := dispatch(out, cmd, m, words); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

func dispatch(out io.Writer, cmd *cobra.Command, m *manager.Manager, words []string) error {
	ctx := cmd.Context()

	switch words[0] {
	case "help":
		fmt.Fprintln(out, shellHelp)

	case "dirs":
		names, err := m.ListDirectories(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}

	case "list":
		if len(words) != 2 {
			return fmt.Errorf("usage: list <dir>")
		}
		entries, err := m.ListEntries(ctx, words[1])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "(empty)")
			return nil
		}
		for i, e := range entries {
			fmt.Fprintf(out, "%d. %s = %s\n", i+1, e.Code, e.Number)
		}

	case "add":
		if len(words) != 4 {
			return fmt.Errorf("usage: add <dir> <code> <number>")
		}
		if err := m.AddNumber(ctx, words[1], words[2], words[3]); err != nil {
			return err
		}
		fmt.Fprintln(out, "added")

	case "get":
		if len(words) != 3 {
			return fmt.Errorf("usage: get <dir> <code>")
		}
		number, err := m.GetNumber(ctx, words[1], words[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, number)

	case "del":
		if len(words) != 3 {
			return fmt.Errorf("usage: del <dir> <code>")
		}
		if err := m.RemoveNumber(ctx, words[1], words[2]); err != nil {
			return err
		}
		fmt.Fprintln(out, "removed")

	case "dial":
		if len(words) != 3 {
			return fmt.Errorf("usage: dial <dir> <code>")
		}
		if err := m.Dial(ctx, words[1], words[2]); err != nil {
			return err
		}
		fmt.Fprintln(out, "dialed")

	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			fmt.Fprintf(out, "%s: %d/%d\n", s.Name, s.Count, s.Capacity)
		}

	default:
		return fmt.Errorf("unknown command %q (try 'help')", words[0])
	}

	return nil
}
