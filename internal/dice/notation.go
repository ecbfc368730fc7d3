package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/character-creator/internal/errors"
)

var notationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// ParseNotation parses simple dice notation like "2d6" into count and faces
func ParseNotation(notation string) (count, faces int, err error) {
	matches := notationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}
	faces, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || faces <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, faces, nil
}
