package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-creator/internal/catalog"
	"github.com/KirkDiggler/character-creator/internal/dice"
	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	creatorevents "github.com/KirkDiggler/character-creator/internal/events"
	"github.com/KirkDiggler/character-creator/internal/orchestrators/abilityscores"
	"github.com/KirkDiggler/character-creator/internal/orchestrators/character"
	"github.com/KirkDiggler/character-creator/internal/pkg/clock"
	"github.com/KirkDiggler/character-creator/internal/pkg/idgen"
	"github.com/KirkDiggler/character-creator/internal/prompt"
	"github.com/KirkDiggler/character-creator/internal/render"
)

type createOptions struct {
	race       string
	class      string
	background string
	method     string
}

func (o *createOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.race, "race", "", "Skip the race menu (ID or name, e.g. elf)")
	cmd.Flags().StringVar(&o.class, "class", "", "Skip the class menu (ID or name)")
	cmd.Flags().StringVar(&o.background, "background", "", "Skip the background menu (ID or name)")
	cmd.Flags().StringVar(&o.method, "method", "", "Skip the method menu (rolled, point_buy, standard_array)")
}

func newCreateCmd() *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a character interactively",
		Long:  `Create runs the interactive session. It is also what creator does when called without a subcommand.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, opts *createOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator, err := newCreator(cmd)
	if err != nil {
		return err
	}

	output, err := orchestrator.Create(ctx, &character.CreateInput{
		RaceID:       opts.race,
		ClassID:      opts.class,
		BackgroundID: opts.background,
		Method:       dnd5e.GenerationMethod(opts.method),
	})
	if err != nil {
		return err
	}

	return render.Character(cmd.OutOrStdout(), output.Character)
}

// newCreator wires the orchestrators to the command's streams
func newCreator(cmd *cobra.Command) (*character.Orchestrator, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	console, err := prompt.NewConsole(&prompt.Config{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
	})
	if err != nil {
		return nil, err
	}

	roller := dice.NewDefaultRoller()
	bus := events.NewBus()
	creatorevents.SubscribeLogger(bus, slog.Default())

	allocator, err := abilityscores.New(&abilityscores.Config{
		Catalog:  cat,
		Roller:   roller,
		Prompter: console,
		EventBus: bus,
	})
	if err != nil {
		return nil, err
	}

	return character.New(&character.Config{
		Catalog:     cat,
		Prompter:    console,
		Roller:      roller,
		Allocator:   allocator,
		IDGenerator: idgen.NewUUID("char"),
		Clock:       clock.New(),
		EventBus:    bus,
	})
}
