package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that p carries every required field and a known difficulty.
// Whitespace-only text counts as missing.
func Validate(p Puzzle) error {
	p.Category = strings.TrimSpace(p.Category)
	p.Question = strings.TrimSpace(p.Question)
	p.Answer = strings.TrimSpace(p.Answer)
	p.Explanation = strings.TrimSpace(p.Explanation)

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("puzzle field %s failed %q", strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("validate puzzle: %w", err)
	}
	return nil
}
