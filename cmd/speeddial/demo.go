package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harishravi121/speeddial/directory"
	"github.com/harishravi121/speeddial/manager"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough of the speed-dial service",
	Long: `demo initializes a small service, fills one directory past capacity,
exercises duplicate and not-found handling, removes an entry, dials a
stored number, and tears the service down. Useful as a smoke test and as
a tour of the API.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// A deliberately tiny capacity so the full-directory path is reachable
	// in a few adds.
	cfg := manager.DefaultConfig()
	cfg.Directory = directory.Config{
		Names:           []string{"Personal", "Work"},
		Capacity:        3,
		MaxCodeLength:   50,
		MaxNumberLength: 20,
	}
	cfg.Observer = "zap"

	m, err := manager.New(&cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	fmt.Fprintf(out, "store %s initialized\n", m.StoreID())

	names, err := m.ListDirectories(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "directories: %v\n", names)

	fmt.Fprintln(out, "\n-- adding entries to Personal (capacity 3) --")
	adds := []struct{ code, number string }{
		{"home", "555-0100"},
		{"mom", "555-0101"},
		{"dentist", "555-0102"},
		{"gym", "555-0103"}, // over capacity
	}
	for _, a := range adds {
		err := m.AddNumber(ctx, "Personal", a.code, a.number)
		report(out, fmt.Sprintf("add %s=%s", a.code, a.number), err)
	}

	fmt.Fprintln(out, "\n-- duplicate and not-found handling --")
	report(out, "add duplicate home", m.AddNumber(ctx, "Personal", "home", "555-9999"))
	_, err = m.GetNumber(ctx, "Personal", "nobody")
	report(out, "get nobody", err)
	report(out, "add to missing directory", m.AddNumber(ctx, "Garage", "a", "1"))

	fmt.Fprintln(out, "\n-- lookup and listing --")
	number, err := m.GetNumber(ctx, "Personal", "mom")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "mom -> %s\n", number)

	if err := printEntries(ctx, out, m, "Personal"); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n-- remove reopens a slot --")
	report(out, "remove dentist", m.RemoveNumber(ctx, "Personal", "dentist"))
	report(out, "add gym again", m.AddNumber(ctx, "Personal", "gym", "555-0103"))
	if err := printEntries(ctx, out, m, "Personal"); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n-- dialing --")
	report(out, "dial home", m.Dial(ctx, "Personal", "home"))

	fmt.Fprintln(out, "\n-- status --")
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		fmt.Fprintf(out, "%s: %d/%d\n", s.Name, s.Count, s.Capacity)
	}

	if err := m.Teardown(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nservice torn down")
	return nil
}

func printEntries(ctx context.Context, out io.Writer, m *manager.Manager, dirName string) error {
	entries, err := m.ListEntries(ctx, dirName)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s entries:\n", dirName)
	for i, e := range entries {
		fmt.Fprintf(out, "  %d. %s = %s\n", i+1, e.Code, e.Number)
	}
	return nil
}

// report prints a one-line outcome, translating library sentinels into
// human-readable reasons.
func report(out io.Writer, action string, err error) {
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s: ok\n", action)
	case errors.Is(err, directory.ErrDirectoryFull):
		fmt.Fprintf(out, "%s: rejected, directory full\n", action)
	case errors.Is(err, directory.ErrDuplicateCode):
		fmt.Fprintf(out, "%s: rejected, code already assigned\n", action)
	case errors.Is(err, directory.ErrCodeNotFound):
		fmt.Fprintf(out, "%s: no such code\n", action)
	case errors.Is(err, directory.ErrDirectoryNotFound):
		fmt.Fprintf(out, "%s: no such directory\n", action)
	default:
		fmt.Fprintf(out, "%s: error: %v\n", action, err)
	}
}
