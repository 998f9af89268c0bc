package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mylist"
)

// RunHistory lists the snapshots recorded in the database.
func (c *CLI) RunHistory(deps *Dependencies) error {
	if deps.Snapshots == nil {
		return mylist.Errorf(mylist.EINVALID, "--history requires --db")
	}

	var filter mylist.SnapshotFilter
	if c.HTML != "" {
		source := absPath(c.HTML)
		filter.Source = &source
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mylist.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots recorded. Run mylist with --db to record one.")
		return nil
	}

	muted := lipgloss.NewRenderer(deps.Stdout).NewStyle().Faint(true)
	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %-2s  items=%d seen=%d  %s\n",
			s.CreatedAt.Local().Format(time.DateTime), s.Locale, s.ItemCount, s.SeenCount, s.Source)
		if s.ContentHash != "" {
			fmt.Fprintln(deps.Stdout, muted.Render("    "+s.ID+"  "+s.ContentHash))
		}
	}
	return nil
}
