package burnfit

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lalitdesh1/BurnFit/internal/service"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Talk to the AI coach",
}

var coachAskCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the coach one question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		return withCoach(cmd, func(ctx context.Context, s *service.CoachSession) error {
			reply, err := s.Send(ctx, message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		})
	},
}

var coachFixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Get one quick suggestion to rescue today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCoach(cmd, func(ctx context.Context, s *service.CoachSession) error {
			suggestion, err := s.FixMyDay(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), suggestion)
			return nil
		})
	},
}

var coachChatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the coach (/fix for a quick suggestion, /quit to leave)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCoach(cmd, func(ctx context.Context, s *service.CoachSession) error {
			return runChat(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
		})
	},
}

func withCoach(cmd *cobra.Command, run func(context.Context, *service.CoachSession) error) error {
	return withTracker(cmd, true, func(ctx context.Context, sqldb *sql.DB, t *service.Tracker) error {
		if _, err := t.RequireProfile(); err != nil {
			return err
		}
		ai, err := loadAI(ctx, cmd, sqldb)
		if err != nil {
			return err
		}
		return run(ctx, service.NewCoachSession(t, ai.coach, ai.fixer))
	})
}

func runChat(ctx context.Context, s *service.CoachSession, in io.Reader, out io.Writer) error {
	for _, m := range s.History() {
		fmt.Fprintf(out, "coach> %s\n", m.Text)
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/fix":
			suggestion, err := s.FixMyDay(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "coach> %s\n", suggestion)
			continue
		}
		reply, err := s.Send(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "coach> %s\n", reply)
	}
}

func init() {
	rootCmd.AddCommand(coachCmd)
	coachCmd.AddCommand(coachAskCmd, coachChatCmd, coachFixCmd)
}
