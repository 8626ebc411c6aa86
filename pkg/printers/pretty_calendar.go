package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"organizer/pkg/calendar"
)

const calWidth = len("Mo Tu We Th Fr Sa Su")

// Month prints a Monday-first month grid. Days with events are bold, today
// is inverted, and the selected day is underlined.
func (pp *PrettyPrint) Month(year int, month time.Month, density map[int]int, selected string) {
	tf := color.New(color.FgWhite, color.Italic)

	title := fmt.Sprintf("%s %d", month, year)
	mid := (calWidth - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	h := color.New(color.Faint)
	_, _ = h.Println("Mo Tu We Th Fr Sa Su")

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	weeks := calendar.MonthGrid(year, month, density, selected, time.Now())
	for _, week := range weeks {
		for i, day := range week {
			if i > 0 {
				fmt.Print(" ")
			}
			if day.Day == 0 {
				fmt.Print("  ")
				continue
			}
			printer := l1
			if day.Count > 0 {
				printer = l2
			}
			if day.IsSelected {
				printer = color.New(color.Bold, color.Underline)
			}
			if day.IsToday {
				printer = color.New(color.Bold, color.ReverseVideo)
			}
			_, _ = printer.Printf("%2d", day.Day)
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
