package puzzle

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestTextAcceptsScalars(t *testing.T) {
	cases := map[string]string{
		`"seven"`: "seven",
		`7`:       "7",
		`3.5`:     "3.5",
		`true`:    "true",
		`null`:    "",
	}
	for in, want := range cases {
		var got Text
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if string(got) != want {
			t.Errorf("unmarshal %s = %q, want %q", in, got, want)
		}
	}
}

func TestTextRejectsContainers(t *testing.T) {
	var got Text
	if err := json.Unmarshal([]byte(`["a"]`), &got); err == nil {
		t.Fatalf("expected error for array input")
	}
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Fatalf("expected error for object input")
	}
}
