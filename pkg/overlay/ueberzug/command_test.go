// ABOUTME: Tests for ueberzug JSON command encoding
// ABOUTME: Golden lines for add/remove plus round-trip through encoding/json

package ueberzug

import (
	"encoding/json"
	"testing"

	"github.com/mauromedda/ueberlay/pkg/overlay"
)

func TestCommand_MarshalAdd(t *testing.T) {
	t.Parallel()

	op := overlay.Op{
		Kind: overlay.OpCreate,
		ID:   "ueberlay-1",
		State: overlay.State{
			Geometry: overlay.NewRect(12, 7, 5, 3),
			Placed:   true,
			Visible:  true,
			Payload:  "/tmp/cat.png",
		},
	}

	got, err := commandFor(op, ScalerContain, true).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"action":"add","identifier":"ueberlay-1","x":12,"y":7,"width":5,"height":3,"path":"/tmp/cat.png","scaler":"contain","draw":true}`
	if string(got) != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestCommand_MarshalRemove(t *testing.T) {
	t.Parallel()

	op := overlay.Op{Kind: overlay.OpDelete, ID: "ueberlay-2"}

	got, err := commandFor(op, ScalerContain, false).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"action":"remove","identifier":"ueberlay-2","draw":false}`
	if string(got) != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestCommand_UpdateMapsToAdd(t *testing.T) {
	t.Parallel()

	op := overlay.Op{
		Kind: overlay.OpUpdate,
		ID:   "ueberlay-3",
		State: overlay.State{
			Geometry: overlay.NewRect(1, 2, 3, 4),
			Placed:   true,
			Visible:  true,
			Payload:  "b.png",
		},
	}

	cmd := commandFor(op, "", true)
	if cmd.Action != ActionAdd {
		t.Errorf("updates must reuse the add action, got %q", cmd.Action)
	}
	// Empty scaler is omitted.
	data, err := cmd.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
	if _, ok := decoded["scaler"]; ok {
		t.Error("empty scaler must be omitted")
	}
	if decoded["width"].(float64) != 3 {
		t.Errorf("width = %v, want 3", decoded["width"])
	}
}

func TestCommand_EscapesPath(t *testing.T) {
	t.Parallel()

	op := overlay.Op{
		Kind: overlay.OpCreate,
		ID:   "ueberlay-4",
		State: overlay.State{
			Geometry: overlay.NewRect(0, 0, 1, 1),
			Placed:   true,
			Visible:  true,
			Payload:  `/tmp/we"ird name.png`,
		},
	}

	data, err := commandFor(op, ScalerContain, true).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}
	if decoded.Path != op.State.Payload {
		t.Errorf("path = %q, want %q", decoded.Path, op.State.Payload)
	}
}
