package abilityscores_test

import (
	"context"
	"testing"

	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-creator/internal/catalog"
	"github.com/KirkDiggler/character-creator/internal/dice"
	dicemock "github.com/KirkDiggler/character-creator/internal/dice/mock"
	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
	creatorevents "github.com/KirkDiggler/character-creator/internal/events"
	"github.com/KirkDiggler/character-creator/internal/orchestrators/abilityscores"
	"github.com/KirkDiggler/character-creator/internal/prompt"
	promptmock "github.com/KirkDiggler/character-creator/internal/prompt/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRoller   *dicemock.MockRoller
	mockPrompter *promptmock.MockPrompter
	bus          toolkitevents.EventBus
	orchestrator *abilityscores.Orchestrator
	ctx          context.Context
	said         []string
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = dicemock.NewMockRoller(s.ctrl)
	s.mockPrompter = promptmock.NewMockPrompter(s.ctrl)
	s.bus = toolkitevents.NewBus()
	s.ctx = context.Background()
	s.said = nil

	cat, err := catalog.Default()
	s.Require().NoError(err)

	orchestrator, err := abilityscores.New(&abilityscores.Config{
		Catalog:  cat,
		Roller:   s.mockRoller,
		Prompter: s.mockPrompter,
		EventBus: s.bus,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator

	s.mockPrompter.EXPECT().Say(gomock.Any()).Do(func(msg string) {
		s.said = append(s.said, msg)
	}).AnyTimes()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectAssignments scripts SelectAbility answers for the values in order and
// checks that each call only offers the abilities still unassigned
func (s *OrchestratorTestSuite) expectAssignments(values []int, answers []dnd5e.Ability) {
	s.Require().Len(answers, len(values))

	pool := dnd5e.AllAbilities()
	calls := make([]any, 0, len(values))
	for i, v := range values {
		offered := make([]dnd5e.Ability, len(pool))
		copy(offered, pool)
		calls = append(calls, s.mockPrompter.EXPECT().
			SelectAbility(gomock.Any(), v, offered).
			Return(answers[i], nil))

		next := make([]dnd5e.Ability, 0, len(pool))
		for _, a := range pool {
			if a != answers[i] {
				next = append(next, a)
			}
		}
		pool = next
	}
	gomock.InOrder(calls...)
}

func (s *OrchestratorTestSuite) expectRolls(totals ...int) {
	calls := make([]any, 0, len(totals))
	for _, t := range totals {
		calls = append(calls, s.mockRoller.EXPECT().
			Roll4d6DropLowest().
			Return(&dice.AbilityRoll{Total: t}, nil))
	}
	gomock.InOrder(calls...)
}

func (s *OrchestratorTestSuite) pointBuyCommands(commands ...string) {
	calls := make([]any, 0, len(commands))
	for _, c := range commands {
		cmd, err := prompt.ParsePointBuyCommand(c)
		s.Require().NoError(err)
		calls = append(calls, s.mockPrompter.EXPECT().
			PointBuyCommand(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cmd, nil))
	}
	gomock.InOrder(calls...)
}

func repeat(cmd string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cmd
	}
	return out
}

func (s *OrchestratorTestSuite) TestNew_MissingDependencies() {
	_, err := abilityscores.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = abilityscores.New(&abilityscores.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Catalog")
	s.Assert().Contains(err.Error(), "Roller")
	s.Assert().Contains(err.Error(), "Prompter")
}

func (s *OrchestratorTestSuite) TestAllocate_RolledElf() {
	s.expectRolls(12, 15, 8, 14, 10, 13)
	s.expectAssignments(
		[]int{15, 14, 13, 12, 10, 8},
		[]dnd5e.Ability{
			dnd5e.AbilityStrength,
			dnd5e.AbilityDexterity,
			dnd5e.AbilityConstitution,
			dnd5e.AbilityIntelligence,
			dnd5e.AbilityWisdom,
			dnd5e.AbilityCharisma,
		},
	)

	output, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		SessionID: "session-1",
		RaceID:    dnd5e.RaceElf,
		ClassID:   dnd5e.ClassRogue,
		Method:    dnd5e.GenerationRolled,
	})
	s.Require().NoError(err)

	s.Assert().Equal([]int{15, 14, 13, 12, 10, 8}, output.Values)
	s.Assert().Len(output.Rolls, 6)
	s.Assert().Equal(14, output.RawScores[dnd5e.AbilityDexterity])
	s.Assert().Equal(16, output.Scores[dnd5e.AbilityDexterity])
	s.Assert().Equal(15, output.Scores[dnd5e.AbilityStrength])

	s.Assert().Contains(s.said, "As a Rogue, your primary abilities are [DEX].")
	s.Assert().Contains(s.said, "Your rolls are: [15, 14, 13, 12, 10, 8]")
	s.Assert().Contains(s.said, "[STR: 15, DEX: 16, CON: 13, INT: 12, WIS: 10, CHA: 8]")
}

func (s *OrchestratorTestSuite) TestAllocate_RolledKeepsDuplicates() {
	s.expectRolls(12, 12, 12, 9, 9, 17)
	s.expectAssignments(
		[]int{17, 12, 12, 12, 9, 9},
		[]dnd5e.Ability{
			dnd5e.AbilityCharisma,
			dnd5e.AbilityWisdom,
			dnd5e.AbilityIntelligence,
			dnd5e.AbilityConstitution,
			dnd5e.AbilityDexterity,
			dnd5e.AbilityStrength,
		},
	)

	output, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceDwarf,
		ClassID: dnd5e.ClassCleric,
		Method:  dnd5e.GenerationRolled,
	})
	s.Require().NoError(err)

	s.Assert().Equal(dnd5e.AbilityScores{
		dnd5e.AbilityStrength:     9,
		dnd5e.AbilityDexterity:    9,
		dnd5e.AbilityConstitution: 14,
		dnd5e.AbilityIntelligence: 12,
		dnd5e.AbilityWisdom:       12,
		dnd5e.AbilityCharisma:     17,
	}, output.Scores)
}

func (s *OrchestratorTestSuite) TestAllocate_StandardArrayHuman() {
	values := []int{15, 14, 13, 12, 10, 8}
	s.expectAssignments(values, []dnd5e.Ability{
		dnd5e.AbilityIntelligence,
		dnd5e.AbilityDexterity,
		dnd5e.AbilityConstitution,
		dnd5e.AbilityWisdom,
		dnd5e.AbilityCharisma,
		dnd5e.AbilityStrength,
	})

	output, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceHuman,
		ClassID: dnd5e.ClassWizard,
		Method:  dnd5e.GenerationStandardArray,
	})
	s.Require().NoError(err)

	s.Assert().Equal(values, output.Values)
	s.Assert().Empty(output.Rolls)
	s.Assert().Equal(dnd5e.AbilityScores{
		dnd5e.AbilityStrength:     9,
		dnd5e.AbilityDexterity:    15,
		dnd5e.AbilityConstitution: 14,
		dnd5e.AbilityIntelligence: 16,
		dnd5e.AbilityWisdom:       13,
		dnd5e.AbilityCharisma:     11,
	}, output.Scores)
	for a, raw := range output.RawScores {
		s.Assert().Equal(raw+1, output.Scores[a], "human bonus on %s", a)
	}
	s.Assert().Contains(s.said, "Your scores are: [15, 14, 13, 12, 10, 8]")
}

func (s *OrchestratorTestSuite) TestAllocate_PointBuySpendsWholeBudget() {
	commands := repeat("STR", 7)
	commands = append(commands, "STR", "-STR", "-CHA")
	commands = append(commands, repeat("DEX", 7)...)
	commands = append(commands, repeat("CON", 7)...)
	commands = append(commands, "INT", "INT")
	s.pointBuyCommands(commands...)

	output, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceDwarf,
		ClassID: dnd5e.ClassFighter,
		Method:  dnd5e.GenerationPointBuy,
	})
	s.Require().NoError(err)

	s.Assert().Equal(dnd5e.AbilityScores{
		dnd5e.AbilityStrength:     14,
		dnd5e.AbilityDexterity:    15,
		dnd5e.AbilityConstitution: 15,
		dnd5e.AbilityIntelligence: 10,
		dnd5e.AbilityWisdom:       8,
		dnd5e.AbilityCharisma:     8,
	}, output.RawScores)
	s.Assert().Equal(17, output.Scores[dnd5e.AbilityConstitution])
	s.Assert().Equal(dnd5e.PointBuyBudget, output.PointsSpent)
	s.Assert().Equal([]int{14, 15, 15, 10, 8, 8}, output.Values)

	spent, err := abilityscores.PointBuySpent(output.RawScores)
	s.Require().NoError(err)
	s.Assert().Equal(dnd5e.PointBuyBudget, spent)

	s.Assert().Contains(s.said, "STR is already at the maximum of 15.")
	s.Assert().Contains(s.said, "CHA cannot go below 8.")
}

func (s *OrchestratorTestSuite) TestAllocate_PointBuyRejectsOverBudget() {
	commands := repeat("STR", 7)
	commands = append(commands, repeat("DEX", 7)...)
	commands = append(commands, repeat("CON", 5)...)
	commands = append(commands, repeat("INT", 3)...)
	commands = append(commands, "CON", "done")
	s.pointBuyCommands(commands...)

	output, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceHalfling,
		ClassID: dnd5e.ClassRogue,
		Method:  dnd5e.GenerationPointBuy,
	})
	s.Require().NoError(err)

	s.Assert().Equal(13, output.RawScores[dnd5e.AbilityConstitution])
	s.Assert().Equal(26, output.PointsSpent)
	s.Assert().Contains(s.said, "Raising CON to 14 costs 2 points, you have 1 left.")
}

func (s *OrchestratorTestSuite) TestAllocate_PointBuyDoneImmediately() {
	s.pointBuyCommands("done")

	output, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceElf,
		ClassID: dnd5e.ClassWizard,
		Method:  dnd5e.GenerationPointBuy,
	})
	s.Require().NoError(err)

	s.Assert().Equal(dnd5e.NewAbilityScores(8), output.RawScores)
	s.Assert().Equal(10, output.Scores[dnd5e.AbilityDexterity])
	s.Assert().Equal(0, output.PointsSpent)
}

func (s *OrchestratorTestSuite) TestAllocate_InvalidInput() {
	testCases := []struct {
		name  string
		input *abilityscores.AllocateInput
	}{
		{"nil input", nil},
		{"missing race", &abilityscores.AllocateInput{ClassID: dnd5e.ClassFighter, Method: dnd5e.GenerationRolled}},
		{"missing class", &abilityscores.AllocateInput{RaceID: dnd5e.RaceElf, Method: dnd5e.GenerationRolled}},
		{"unknown method", &abilityscores.AllocateInput{RaceID: dnd5e.RaceElf, ClassID: dnd5e.ClassFighter, Method: "4d6_reroll_1s"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.Allocate(s.ctx, tc.input)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestAllocate_UnknownRace() {
	_, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  "RACE_TIEFLING",
		ClassID: dnd5e.ClassFighter,
		Method:  dnd5e.GenerationStandardArray,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAllocate_PrompterCanceled() {
	s.mockPrompter.EXPECT().
		SelectAbility(gomock.Any(), 15, dnd5e.AllAbilities()).
		Return(dnd5e.Ability(""), errors.Canceled("input closed"))

	_, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceElf,
		ClassID: dnd5e.ClassFighter,
		Method:  dnd5e.GenerationStandardArray,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestAllocate_RollerFailure() {
	s.mockRoller.EXPECT().
		Roll4d6DropLowest().
		Return(nil, errors.Internal("entropy exhausted"))

	_, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceElf,
		ClassID: dnd5e.ClassFighter,
		Method:  dnd5e.GenerationRolled,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestAllocate_RejectsAbilityOutsidePool() {
	s.mockPrompter.EXPECT().
		SelectAbility(gomock.Any(), 15, gomock.Any()).
		Return(dnd5e.AbilityStrength, nil)
	s.mockPrompter.EXPECT().
		SelectAbility(gomock.Any(), 14, gomock.Any()).
		Return(dnd5e.AbilityStrength, nil)

	_, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		RaceID:  dnd5e.RaceElf,
		ClassID: dnd5e.ClassFighter,
		Method:  dnd5e.GenerationStandardArray,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestAllocate_PublishesEvents() {
	counts := make(map[string]int)
	for _, eventType := range creatorevents.AllEventTypes() {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e toolkitevents.Event) error {
			counts[e.Type()]++
			return nil
		})
	}

	s.expectAssignments(abilityscores.StandardArrayValues(), dnd5e.AllAbilities())

	_, err := s.orchestrator.Allocate(s.ctx, &abilityscores.AllocateInput{
		SessionID: "session-9",
		RaceID:    dnd5e.RaceHuman,
		ClassID:   dnd5e.ClassFighter,
		Method:    dnd5e.GenerationStandardArray,
	})
	s.Require().NoError(err)

	s.Assert().Equal(1, counts[creatorevents.EventAbilityScoresGenerated])
	s.Assert().Equal(6, counts[creatorevents.EventAbilityAssigned])
	s.Assert().Equal(6, counts[creatorevents.EventRacialBonusApplied])
	s.Assert().Zero(counts[creatorevents.EventCharacterAssembled])
}
