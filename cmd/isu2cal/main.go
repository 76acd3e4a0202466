// Command isu2cal is the one-shot converter: fetch the personal schedule
// for a date range and write it out as an .ics file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/isu2cal/isu2cal/internal/i18n"
	"github.com/isu2cal/isu2cal/internal/ical"
	"github.com/isu2cal/isu2cal/internal/itmo"
	"github.com/isu2cal/isu2cal/internal/schedule"
)

var rootCmd = &cobra.Command{
	Use:   "isu2cal",
	Short: "Convert an ITMO personal schedule into an iCalendar file",
	Long: `Fetches the personal class schedule from the ITMO schedule API and
converts it into an RFC 5545 iCalendar document. Without --from/--to the
current week (Monday through Sunday) is fetched.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		langStr, _ := cmd.Flags().GetString("lang")
		output, _ := cmd.Flags().GetString("output")
		tokenFile, _ := cmd.Flags().GetString("token")

		lang, err := i18n.ParseLanguage(langStr)
		if err != nil {
			return err
		}

		start, end := schedule.WeekRange(time.Now())
		if fromStr != "" || toStr != "" {
			if start, err = time.Parse(time.DateOnly, fromStr); err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			if end, err = time.Parse(time.DateOnly, toStr); err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}
		}

		ctx := context.Background()

		tokens, err := itmo.NewFileTokenSource(ctx, tokenFile)
		if err != nil {
			return fmt.Errorf("load token: %w", err)
		}

		payload, err := itmo.NewClient(tokens).PersonalSchedule(ctx, start, end, lang)
		if err != nil {
			return fmt.Errorf("fetch schedule: %w", err)
		}

		sched, err := schedule.Parse(payload)
		if err != nil {
			return err
		}

		lessons := sched.Lessons()
		text, err := ical.Generate(lessons, lang)
		if err != nil {
			return err
		}

		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write calendar: %w", err)
		}

		slog.Info("Calendar written", "path", output, "events", len(lessons))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("from", "f", "", "range start, YYYY-MM-DD (default: this week's Monday)")
	rootCmd.Flags().StringP("to", "t", "", "range end, YYYY-MM-DD (default: this week's Sunday)")
	rootCmd.Flags().StringP("lang", "l", "en", "display language (en or ru)")
	rootCmd.Flags().StringP("output", "o", "schedule.ics", "output file path")
	rootCmd.Flags().String("token", "token.json", "path to the stored OAuth token file")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
