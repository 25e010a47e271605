package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/tomatotask/internal/store"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change application settings",
	}
	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func printSettings(cfg *store.Settings) {
	fmt.Printf("work duration            %d min\n", cfg.WorkDuration)
	fmt.Printf("short break              %d min\n", cfg.ShortBreakDuration)
	fmt.Printf("long break               %d min\n", cfg.LongBreakDuration)
	fmt.Printf("pomodoros until long     %d\n", cfg.PomodorosUntilLongBreak)
	fmt.Printf("language                 %s\n", cfg.Language)
	fmt.Printf("theme                    %s\n", cfg.Theme)
	fmt.Printf("notification sound       %s\n", cfg.NotificationSound)
	fmt.Printf("auto-start breaks        %t\n", cfg.AutoStartBreaks)
	fmt.Printf("auto-start pomodoros     %t\n", cfg.AutoStartPomodoros)
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := st.GetSettings()
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(cfg)
			}
			printSettings(cfg)
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var (
		work       int
		shortBreak int
		longBreak  int
		untilLong  int
		language   string
		theme      string
		sound      string
		autoBreaks bool
		autoPomos  bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings (unspecified fields keep their values)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The store replaces the whole row at once, so merge the
			// flags onto the current values here.
			current, err := st.GetSettings()
			if err != nil {
				return err
			}
			in := store.UpdateSettingsInput{
				WorkDuration:            current.WorkDuration,
				ShortBreakDuration:      current.ShortBreakDuration,
				LongBreakDuration:       current.LongBreakDuration,
				PomodorosUntilLongBreak: current.PomodorosUntilLongBreak,
				Language:                current.Language,
				Theme:                   current.Theme,
				NotificationSound:       current.NotificationSound,
				AutoStartBreaks:         current.AutoStartBreaks,
				AutoStartPomodoros:      current.AutoStartPomodoros,
			}
			if cmd.Flags().Changed("work") {
				in.WorkDuration = work
			}
			if cmd.Flags().Changed("short-break") {
				in.ShortBreakDuration = shortBreak
			}
			if cmd.Flags().Changed("long-break") {
				in.LongBreakDuration = longBreak
			}
			if cmd.Flags().Changed("until-long-break") {
				in.PomodorosUntilLongBreak = untilLong
			}
			if cmd.Flags().Changed("language") {
				in.Language = language
			}
			if cmd.Flags().Changed("theme") {
				in.Theme = theme
			}
			if cmd.Flags().Changed("sound") {
				in.NotificationSound = sound
			}
			if cmd.Flags().Changed("auto-start-breaks") {
				in.AutoStartBreaks = autoBreaks
			}
			if cmd.Flags().Changed("auto-start-pomodoros") {
				in.AutoStartPomodoros = autoPomos
			}

			cfg, err := st.UpdateSettings(in)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(cfg)
			}
			printSettings(cfg)
			return nil
		},
	}
	cmd.Flags().IntVar(&work, "work", 0, "work duration in minutes (1-180)")
	cmd.Flags().IntVar(&shortBreak, "short-break", 0, "short break in minutes (1-60)")
	cmd.Flags().IntVar(&longBreak, "long-break", 0, "long break in minutes (1-60)")
	cmd.Flags().IntVar(&untilLong, "until-long-break", 0, "pomodoros until long break (1-10)")
	cmd.Flags().StringVar(&language, "language", "", "language: en, fr, es, it or de")
	cmd.Flags().StringVar(&theme, "theme", "", "theme: light or dark")
	cmd.Flags().StringVar(&sound, "sound", "", "notification sound identifier")
	cmd.Flags().BoolVar(&autoBreaks, "auto-start-breaks", false, "start breaks automatically")
	cmd.Flags().BoolVar(&autoPomos, "auto-start-pomodoros", false, "start pomodoros automatically")
	return cmd
}
