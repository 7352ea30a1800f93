package puzzle

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Text is a string that also accepts JSON numbers and booleans when decoded.
// Numeric answers such as 42 are common in hand-written puzzle files.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		v, err := strconv.ParseBool(string(b))
		if err != nil {
			return fmt.Errorf("invalid text value %s", b)
		}
		*t = Text(strconv.FormatBool(v))
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid text value %s", b)
		}
		*t = Text(n.String())
	}
	return nil
}
