// Package printers renders records for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"organizer/pkg/record"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("0190163d-8d3f-7d55-0000-000000000000  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" record")
	default:
		_, _ = c.Println(" records")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Journal prints entries as date-headed blocks, newest first.
func (pp *PrettyPrint) Journal(entries ...*record.JournalEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	d := color.New(color.Bold)
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	u := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print("  ")
		}
		_, _ = d.Print(e.Date)
		_, _ = t.Printf("  %s\n", strings.ReplaceAll(e.Text, "\n", "\n"+indentFor(pp.ShowID)))
		if e.Updated != nil {
			_, _ = u.Printf("%sedited %s\n", indentFor(pp.ShowID), e.Updated.Local().Format("2006-01-02 15:04"))
		}
	}
	_, _ = t.Println("")
}

// Tasks prints a task table in list order.
func (pp *PrettyPrint) Tasks(tasks ...*record.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	if pp.ShowID {
		table.AddRow("ID", "", "PRIORITY", "TITLE")
	} else {
		table.AddRow("", "PRIORITY", "TITLE")
	}

	for _, t := range tasks {
		mark := " "
		title := t.Title
		if t.Done {
			mark = "x"
		}
		if pp.ShowID {
			table.AddRow(t.ID, mark, string(t.Priority), title)
		} else {
			table.AddRow(mark, string(t.Priority), title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

// Events prints an event table ordered as given (when ascending from the
// repository).
func (pp *PrettyPrint) Events(events ...*record.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	if pp.ShowID {
		table.AddRow("ID", "WHEN", "REMIND", "TITLE")
	} else {
		table.AddRow("WHEN", "REMIND", "TITLE")
	}

	for _, ev := range events {
		when := ev.When.Local().Format("2006-01-02 15:04")
		remind := fmt.Sprintf("%dm", ev.RemindMin)
		title := ev.Title
		if ev.Notified {
			title += " *"
		}
		if pp.ShowID {
			table.AddRow(ev.ID, when, remind, title)
		} else {
			table.AddRow(when, remind, title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

func indentFor(showID bool) string {
	pad := len("2006-01-02  ")
	if showID {
		return strings.Repeat(" ", len(spacing)+pad)
	}
	return strings.Repeat(" ", pad)
}

// Clock formats an instant the way the today view shows event times.
func Clock(t time.Time) string {
	return t.Local().Format("15:04")
}
