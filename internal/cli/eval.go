package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Run and inspect agent evaluations",
	}

	evalCmd.AddCommand(newEvalRunCmd())
	evalCmd.AddCommand(newEvalGetCmd())
	evalCmd.AddCommand(newEvalListCmd())
	evalCmd.AddCommand(newEvalDeleteCmd())

	return evalCmd
}

func newEvalRunCmd() *cobra.Command {
	var (
		role         string
		gamesPerRole int
		turnsToSpeak int
		concurrency  int
	)

	cmd := &cobra.Command{
		Use:   "run <agent-endpoint>",
		Short: "Run an evaluation batch against an agent endpoint",
		Long: `Run an evaluation batch against an agent endpoint.

The agent plays a configurable number of games in each role while the
remaining seats are simulated. By default every role is evaluated; use
--role to pin a single one. The command blocks until the batch finishes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"participants": map[string]string{"agent": args[0]},
				"config": map[string]any{
					"role":           role,
					"games_per_role": gamesPerRole,
					"turns_to_speak": turnsToSpeak,
					"concurrency":    concurrency,
				},
			}

			var result Evaluation
			if err := client.Post("/api/v1/evaluations", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Pin the agent to a single role (villager, werewolf, seer)")
	cmd.Flags().IntVar(&gamesPerRole, "games", 0, "Games per evaluated role (0 uses the server default)")
	cmd.Flags().IntVar(&turnsToSpeak, "turns", 0, "Debate passes per round (0 uses the server default)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Concurrent games (0 uses the server default)")

	return cmd
}

func newEvalGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <evaluation-id>",
		Short: "Fetch an archived evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Evaluation
			if err := client.Get("/api/v1/evaluations/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEvalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived evaluations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result EvaluationList
			if err := client.Get("/api/v1/evaluations", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEvalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <evaluation-id>",
		Short: "Delete an archived evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/evaluations/" + args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted evaluation %s\n", args[0])
			return nil
		},
	}
}
