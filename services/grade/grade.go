package grade

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kiddy-universe/web-api/services/common"
)

const (
	Min = 1
	Max = 10
)

var digitsR = regexp.MustCompile(`^[0-9]+$`)

var ErrInvalid = common.NewValidationError("Invalid grade")

// Parse validates a raw grade and returns it as an integer in [Min, Max].
func Parse(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !digitsR.MatchString(raw) {
		return 0, ErrInvalid
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < Min || n > Max {
		return 0, ErrInvalid
	}
	return n, nil
}

func Welcome(n int) string {
	return fmt.Sprintf("Welcome to Grade %d Universe — Let’s Learn with Stories & Games!", n)
}
