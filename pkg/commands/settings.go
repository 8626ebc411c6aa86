package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the theme preference.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Println(a.Settings.Theme())
				return nil
			}
			if err := a.Settings.SetTheme(args[0]); err != nil {
				return err
			}
			fmt.Printf("theme set to %s\n", args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addSound(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sound [on|off]",
		Short: "Show or set whether reminders beep.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			st := a.Settings.Load()
			if len(args) == 0 {
				if st.SoundEnabled {
					fmt.Println("on")
				} else {
					fmt.Println("off")
				}
				return nil
			}
			switch args[0] {
			case "on":
				st.SoundEnabled = true
			case "off":
				st.SoundEnabled = false
			default:
				return fmt.Errorf("unknown sound setting %q, want on or off", args[0])
			}
			if err := a.Settings.Save(st); err != nil {
				return err
			}
			fmt.Printf("sound %s\n", args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
