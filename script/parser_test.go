package script

import (
	"strings"
	"testing"
)

const sampleScript = `
// probe voltages per channel
fig {
    width: 8.0
    height: 4.0
    subplot 0 0 {
        title: "Voltage \"A\""
        grid: major
        # inline xs, bound ys
        plot [0, 1, 2] ${readings.y} {
            label: "probe"
            line: dashed
            marker: circle
        }
        fill [0, 1, 2] ${readings.top} ${readings.bottom}
        step [0, 1, 2, 3] [5, 3, 4]
    }
}
`

func TestParseScript(t *testing.T) {
	s, err := ParseString(sampleScript)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(s.Items) != 3 {
		t.Fatalf("got %d figure items, want 3", len(s.Items))
	}

	width := s.Items[0].Assignment
	if width == nil || width.Key != "width" {
		t.Fatalf("items[0] = %+v, want width assignment", s.Items[0])
	}
	if width.Value.Number == nil || *width.Value.Number != 8.0 {
		t.Errorf("width value = %+v, want 8.0", width.Value)
	}

	sub := s.Items[2].Subplot
	if sub == nil {
		t.Fatalf("items[2] = %+v, want subplot block", s.Items[2])
	}
	if sub.Row != 0 || sub.Col != 0 {
		t.Errorf("subplot cell = (%d, %d), want (0, 0)", sub.Row, sub.Col)
	}
	if len(sub.Items) != 5 {
		t.Fatalf("got %d subplot items, want 5", len(sub.Items))
	}

	title := sub.Items[0].Assignment
	if title == nil || title.Key != "title" {
		t.Fatalf("subplot items[0] = %+v, want title assignment", sub.Items[0])
	}
	if title.Value.String == nil || string(*title.Value.String) != `Voltage "A"` {
		t.Errorf("title = %+v, want unquoted string with escape", title.Value)
	}

	plot := sub.Items[2].Plot
	if plot == nil || plot.Name != "plot" {
		t.Fatalf("subplot items[2] = %+v, want plot command", sub.Items[2])
	}
	if got := plot.X.Array; len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("plot xs = %v, want [0 1 2]", got)
	}
	if plot.Y.Ref == nil || string(*plot.Y.Ref) != "readings.y" {
		t.Errorf("plot ys = %+v, want ref readings.y", plot.Y)
	}
	if plot.Block == nil || len(plot.Block.Entries) != 3 {
		t.Fatalf("plot options = %+v, want 3 entries", plot.Block)
	}
	if plot.Block.Entries[1].Key != "line" {
		t.Errorf("option 1 key = %q, want line", plot.Block.Entries[1].Key)
	}

	fill := sub.Items[3].Fill
	if fill == nil {
		t.Fatalf("subplot items[3] = %+v, want fill command", sub.Items[3])
	}
	if fill.Top.Ref == nil || string(*fill.Top.Ref) != "readings.top" {
		t.Errorf("fill top = %+v, want ref readings.top", fill.Top)
	}
	if fill.Block != nil {
		t.Errorf("fill block = %+v, want none", fill.Block)
	}

	step := sub.Items[4].Plot
	if step == nil || step.Name != "step" {
		t.Fatalf("subplot items[4] = %+v, want step command", sub.Items[4])
	}
	if len(step.X.Array) != 4 || len(step.Y.Array) != 3 {
		t.Errorf("step series = %v / %v, want 4 edges and 3 values", step.X.Array, step.Y.Array)
	}
}

func TestParseTrimsReferencePath(t *testing.T) {
	s, err := ParseString("fig {\nsubplot 0 0 {\nplot ${ runs[0].x } [1]\n}\n}")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	plot := s.Items[0].Subplot.Items[0].Plot
	if plot.X.Ref == nil || string(*plot.X.Ref) != "runs[0].x" {
		t.Errorf("ref = %+v, want runs[0].x with the wrapper and padding stripped", plot.X.Ref)
	}
}

func TestParseReader(t *testing.T) {
	if _, err := Parse(strings.NewReader(sampleScript)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseRejectsMalformedScripts(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"no fig block", ""},
		{"plot missing ys", "fig { subplot 0 0 { plot [1, 2] } }"},
		{"assignment missing colon", "fig { width 8.0 }"},
		{"unterminated array", "fig { subplot 0 0 { plot [1, 2 [3] } }"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseString(tt.src); err == nil {
				t.Errorf("ParseString(%q) succeeded, want error", tt.src)
			}
		})
	}
}
