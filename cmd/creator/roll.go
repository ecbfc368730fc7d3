package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-creator/internal/dice"
	"github.com/KirkDiggler/character-creator/internal/orchestrators/abilityscores"
)

func newRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll [notation]",
		Short: "Roll ability scores or arbitrary dice",
		Long: `Without arguments, roll a set of six ability scores (4d6, dropping the lowest die).
With a notation such as 2d6 or 1d20, roll those dice and print the total.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roller := dice.NewDefaultRoller()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				count, faces, err := dice.ParseNotation(args[0])
				if err != nil {
					return err
				}
				values, err := roller.RollDice(count, faces)
				if err != nil {
					return err
				}
				total := 0
				for _, v := range values {
					total += v
				}
				_, err = fmt.Fprintf(out, "%dd%d: %v = %d\n", count, faces, values, total)
				return err
			}

			for i := 0; i < abilityscores.RolledScoreCount; i++ {
				roll, err := roller.Roll4d6DropLowest()
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s: %v dropped %d = %d\n",
					dice.AbilityScoreNotation, roll.Dice, roll.Dropped, roll.Total); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
