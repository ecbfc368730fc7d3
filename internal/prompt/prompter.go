// Package prompt reads and validates the answers a user types during a creation session
package prompt

//go:generate mockgen -destination=mock/mock_prompter.go -package=promptmock github.com/KirkDiggler/character-creator/internal/prompt Prompter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-creator/internal/errors"
)

const (
	menuPrompt          = "Pick a number: "
	randomOption        = "0. Random"
	invalidMenuFormat   = "Invalid input, please pick a number between 1 and %d. "
	invalidChoiceFormat = "Invalid, please pick a number between 1 and %d"
	assignAbilityFormat = "What would you like to assign %d to? Please select %s "
	invalidAbilityFmt   = "Invalid choice, please pick one of the following: %s "
	pointBuyFormat      = "Points remaining: %d. Enter an ability to raise (e.g. STR), -ABILITY to lower, or done: "
	invalidPointBuyFmt  = "Invalid command, please enter one of %s, -ABILITY to lower, or done. "
)

// MaxLineLength is the longest answer the console accepts. Longer lines are
// discarded and the prompt asks again.
const MaxLineLength = 4096

// Prompter asks the user questions and only returns answers that passed validation.
// Every method re-prompts on bad input until a valid answer arrives, the input
// closes or the context is canceled.
type Prompter interface {
	// SelectOption shows a numbered menu and returns the 1-based pick, or
	// RandomSelection when allowRandom is set and the user chose 0
	SelectOption(ctx context.Context, title string, options []string, allowRandom bool) (int, error)

	// SelectAbility asks which of the available abilities receives score
	SelectAbility(ctx context.Context, score int, available []dnd5e.Ability) (dnd5e.Ability, error)

	// PointBuyCommand shows the current scores and budget and reads one command
	PointBuyCommand(ctx context.Context, scores dnd5e.AbilityScores, remaining int) (*PointBuyCommand, error)

	// Say writes a line of output
	Say(message string)
}

// Config holds the streams the console reads from and writes to
type Config struct {
	In  io.Reader
	Out io.Writer
}

// Validate ensures both streams are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}

	return vb.Build()
}

// Console is a line-oriented Prompter over a reader and writer
type Console struct {
	reader *bufio.Reader
	out    io.Writer

	start sync.Once
	lines chan lineResult
}

type lineResult struct {
	text    string
	tooLong bool
	err     error
}

// Ensure Console implements the Prompter interface
var _ Prompter = (*Console)(nil)

// NewConsole creates a console prompter
func NewConsole(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Console{
		reader: bufio.NewReader(cfg.In),
		out:    cfg.Out,
		lines:  make(chan lineResult),
	}, nil
}

// SelectOption implements Prompter
func (c *Console) SelectOption(ctx context.Context, title string, options []string, allowRandom bool) (int, error) {
	var menu strings.Builder
	menu.WriteString(title)
	menu.WriteString("\n")
	for i, option := range options {
		fmt.Fprintf(&menu, "%d. %s\n", i+1, option)
	}
	if allowRandom {
		menu.WriteString(randomOption + "\n")
	}
	menu.WriteString(menuPrompt)

	// Menus without a random option use the shorter complaint
	invalid := invalidMenuFormat
	if !allowRandom {
		invalid = invalidChoiceFormat
	}

	for {
		c.write(menu.String())

		line, err := c.readLine(ctx)
		if err == nil {
			var selection int
			selection, err = ParseMenuSelection(line, len(options), allowRandom)
			if err == nil {
				return selection, nil
			}
		}
		if !errors.IsRetryable(err) {
			return 0, err
		}

		slog.Debug("Rejected menu input",
			"title", strings.TrimSpace(title),
			"input", truncate(line),
			"error", err)
		c.Say(fmt.Sprintf(invalid, len(options)))
	}
}

// SelectAbility implements Prompter
func (c *Console) SelectAbility(ctx context.Context, score int, available []dnd5e.Ability) (dnd5e.Ability, error) {
	if len(available) == 0 {
		return "", errors.FailedPrecondition("no abilities left to assign")
	}

	choices := FormatAbilities(available)
	c.write(fmt.Sprintf(assignAbilityFormat, score, choices))

	for {
		line, err := c.readLine(ctx)
		if err == nil {
			var ability dnd5e.Ability
			ability, err = ParseAbilityChoice(line, available)
			if err == nil {
				return ability, nil
			}
		}
		if !errors.IsRetryable(err) {
			return "", err
		}

		slog.Debug("Rejected ability choice",
			"score", score,
			"input", truncate(line),
			"error", err)
		if errors.IsFailedPrecondition(err) {
			c.write(fmt.Sprintf("%s is already assigned. ", strings.ToUpper(strings.TrimSpace(line))))
		}
		c.write(fmt.Sprintf(invalidAbilityFmt, choices))
	}
}

// PointBuyCommand implements Prompter
func (c *Console) PointBuyCommand(ctx context.Context, scores dnd5e.AbilityScores, remaining int) (*PointBuyCommand, error) {
	c.Say("Current scores: " + formatScores(scores))

	for {
		c.write(fmt.Sprintf(pointBuyFormat, remaining))

		line, err := c.readLine(ctx)
		if err == nil {
			var cmd *PointBuyCommand
			cmd, err = ParsePointBuyCommand(line)
			if err == nil {
				return cmd, nil
			}
		}
		if !errors.IsRetryable(err) {
			return nil, err
		}

		slog.Debug("Rejected point buy command", "input", truncate(line), "error", err)
		c.Say(fmt.Sprintf(invalidPointBuyFmt, FormatAbilities(dnd5e.AllAbilities())))
	}
}

// Say implements Prompter
func (c *Console) Say(message string) {
	c.write(message + "\n")
}

func (c *Console) write(s string) {
	// Console output errors have nowhere better to go than the log
	if _, err := io.WriteString(c.out, s); err != nil {
		slog.Warn("Failed to write console output", "error", err)
	}
}

// readLine waits for the next input line or for ctx to end. A closed input
// yields CANCELED so callers never spin on an exhausted stream, and an
// over-long line yields INVALID_ARGUMENT so the prompt can ask again.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeCanceled, "prompt canceled")
	}

	c.start.Do(func() { go c.readLoop() })

	select {
	case <-ctx.Done():
		return "", errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "prompt canceled")
	case res, ok := <-c.lines:
		switch {
		case !ok, res.err == io.EOF:
			return "", errors.Canceled("input closed")
		case res.err != nil:
			return "", errors.Wrap(res.err, "failed to read input")
		case res.tooLong:
			return "", errors.InvalidArgumentf("input is longer than %d bytes", MaxLineLength)
		}
		return res.text, nil
	}
}

// readLoop feeds lines to readLine until the input fails. It blocks on the
// reader, so it lives as long as the input does.
func (c *Console) readLoop() {
	defer close(c.lines)
	for {
		text, tooLong, err := readInputLine(c.reader, MaxLineLength)
		c.lines <- lineResult{text: text, tooLong: tooLong, err: err}
		if err != nil {
			return
		}
	}
}

// readInputLine reads through the next newline. Lines over limit are drained
// and reported as tooLong. A final line without a newline is returned before EOF.
func readInputLine(r *bufio.Reader, limit int) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			if len(bytes.TrimRight(buf, "\r\n")) > limit {
				tooLong = true
				buf = nil
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && (err != io.EOF || (len(buf) == 0 && !tooLong)) {
			return "", false, err
		}
		return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
	}
}

func truncate(line string) string {
	const logged = 64
	if len(line) > logged {
		return line[:logged] + "..."
	}
	return line
}

func formatScores(scores dnd5e.AbilityScores) string {
	parts := make([]string, 0, len(scores))
	for _, s := range scores.Ordered() {
		parts = append(parts, fmt.Sprintf("%s %d", s.Ability, s.Score))
	}
	return strings.Join(parts, ", ")
}
