package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-creator/internal/catalog"
	"github.com/KirkDiggler/character-creator/internal/render"
)

func newRacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "races [name]",
		Short: "Show available races",
		Long:  `Show every race with its speed, ability bonuses and traits, or a single race by ID or name.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			races := cat.ListRaces()
			if len(args) == 1 {
				race, err := cat.GetRace(args[0])
				if err != nil {
					return err
				}
				races = races[:0]
				races = append(races, race)
			}

			for _, race := range races {
				if err := render.Race(cmd.OutOrStdout(), race); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes [name]",
		Short: "Show available classes",
		Long:  `Show every class with its hit die, abilities, proficiencies and equipment, or a single class by ID or name.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			classes := cat.ListClasses()
			if len(args) == 1 {
				class, err := cat.GetClass(args[0])
				if err != nil {
					return err
				}
				classes = classes[:0]
				classes = append(classes, class)
			}

			for _, class := range classes {
				if err := render.Class(cmd.OutOrStdout(), class); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newBackgroundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backgrounds [name]",
		Short: "Show available backgrounds",
		Long:  `Show every background with its skills, tool proficiencies and equipment, or a single background by ID or name.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			backgrounds := cat.ListBackgrounds()
			if len(args) == 1 {
				bg, err := cat.GetBackground(args[0])
				if err != nil {
					return err
				}
				backgrounds = backgrounds[:0]
				backgrounds = append(backgrounds, bg)
			}

			for _, bg := range backgrounds {
				if err := render.Background(cmd.OutOrStdout(), bg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
