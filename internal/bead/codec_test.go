package bead

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode_FullRecord(t *testing.T) {
	t.Parallel()

	data := []byte(`[{
		"id": "bd-1",
		"title": "Wire the parser",
		"status": "open",
		"priority": 2,
		"blocked_by": ["bd-0"],
		"blocks": ["bd-2", "bd-3"],
		"duration": 45
	}]`)

	beads, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(beads) != 1 {
		t.Fatalf("expected 1 bead, got %d", len(beads))
	}

	d := 45
	want := Bead{
		ID:        "bd-1",
		Title:     "Wire the parser",
		Status:    "open",
		Priority:  2,
		BlockedBy: []string{"bd-0"},
		Blocks:    []string{"bd-2", "bd-3"},
		Duration:  &d,
	}
	if diff := cmp.Diff(want, beads[0]); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_OptionalDurationAbsent(t *testing.T) {
	t.Parallel()

	beads, err := Decode([]byte(`[{"id":"a","title":"","status":"open","priority":0,"blocked_by":[],"blocks":[]}]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if beads[0].Duration != nil {
		t.Errorf("Duration = %v, want nil", *beads[0].Duration)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"object not array", `{"id":"a"}`},
		{"wrong field type", `[{"id":"a","priority":"high"}]`},
		{"blocked_by not array", `[{"id":"a","blocked_by":"b"}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("error %T is not *DecodeError", err)
			}
			if decodeErr.Unwrap() == nil {
				t.Error("DecodeError carries no cause")
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	adjacency := map[string][]string{"a": {"b"}, "b": {}}
	out, err := Encode(adjacency)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Re-encoding a decoded result must be lossless.
	again, err := Encode(adjacency)
	if err != nil {
		t.Fatalf("Encode (second): %v", err)
	}
	if string(out) != string(again) {
		t.Errorf("re-encode not byte-identical: %s vs %s", out, again)
	}
}

func TestEncode_Unserializable(t *testing.T) {
	t.Parallel()

	_, err := Encode(func() {})
	if err == nil {
		t.Fatal("expected error for unserializable value")
	}
	var encodeErr *EncodeError
	if !errors.As(err, &encodeErr) {
		t.Errorf("error %T is not *EncodeError", err)
	}
}

func TestClosedSet(t *testing.T) {
	t.Parallel()

	beads := []Bead{
		{ID: "a", Status: "closed"},
		{ID: "b", Status: "open"},
		{ID: "c", Status: "Closed"},
	}
	got := ClosedSet(beads)
	want := map[string]bool{"a": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClosedSet mismatch (-want +got):\n%s", diff)
	}
}
