package script

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestResolveSeries(t *testing.T) {
	var doc any
	err := json.Unmarshal([]byte(`{
		"signal": {"y": [1.5, 2.5]},
		"runs": [{"y": [1]}, {"y": [2, 3]}],
		"matrix": [[9, 8], [7, 6]]
	}`), &doc)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cases := []struct {
		path string
		want []float64
	}{
		{"signal.y", []float64{1.5, 2.5}},
		{"runs[1].y", []float64{2, 3}},
		{"matrix[0]", []float64{9, 8}},
	}
	for _, tt := range cases {
		got, err := resolveSeries(doc, tt.path)
		if err != nil {
			t.Errorf("resolveSeries(%q): %v", tt.path, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("resolveSeries(%q) = %v, want %v", tt.path, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("resolveSeries(%q)[%d] = %v, want %v", tt.path, i, got[i], tt.want[i])
			}
		}
	}
}

func TestResolveSeriesErrors(t *testing.T) {
	var doc any
	if err := json.Unmarshal([]byte(`{"signal": {"y": [1, "two"]}}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cases := []struct {
		name    string
		data    any
		path    string
		wantSub string
	}{
		{"no document", nil, "signal.y", "no data document"},
		{"missing path", doc, "signal.z", "path not found"},
		{"not an array", doc, "signal", "not an array"},
		{"index out of range", doc, "signal.y[5]", "path not found"},
		{"non numeric element", doc, "signal.y", "element 1 is not a number"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveSeries(tt.data, tt.path)
			if err == nil {
				t.Fatal("resolveSeries succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("err = %q, want it to mention %q", err, tt.wantSub)
			}
		})
	}
}
