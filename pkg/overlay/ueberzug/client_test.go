// ABOUTME: Tests for the writer-backed renderer client
// ABOUTME: Draw-flag batching, emission order, and mid-batch write failures

package ueberzug

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/ueberlay/pkg/overlay"
)

func testOps() []overlay.Op {
	mk := func(id string, col int) overlay.Op {
		return overlay.Op{
			Kind: overlay.OpCreate,
			ID:   overlay.ID(id),
			State: overlay.State{
				Geometry: overlay.NewRect(col, 0, 2, 2),
				Placed:   true,
				Visible:  true,
				Payload:  id + ".png",
			},
		}
	}
	return []overlay.Op{mk("a", 0), mk("b", 3), mk("c", 6)}
}

func decodeLines(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("line %q is not valid JSON: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestClient_SynchronousDrawOnLastOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewWriterClient(&buf)

	applied, err := c.Dispatch(testOps())
	if err != nil || applied != 3 {
		t.Fatalf("applied=%d err=%v", applied, err)
	}

	lines := decodeLines(t, buf.String())
	if len(lines) != 3 {
		t.Fatalf("expected 3 command lines, got %d", len(lines))
	}
	for i, m := range lines {
		wantDraw := i == len(lines)-1
		if m["draw"].(bool) != wantDraw {
			t.Errorf("line %d draw=%v, want %v", i, m["draw"], wantDraw)
		}
	}
	// Emission order matches op order.
	if lines[0]["identifier"] != "a" || lines[2]["identifier"] != "c" {
		t.Errorf("order not preserved: %v", lines)
	}
}

func TestClient_AsynchronousDrawOnEvery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewWriterClient(&buf, WithDrawingMoment(DrawAsynchronous))

	if _, err := c.Dispatch(testOps()); err != nil {
		t.Fatal(err)
	}
	for i, m := range decodeLines(t, buf.String()) {
		if m["draw"].(bool) != true {
			t.Errorf("line %d draw=false in asynchronous mode", i)
		}
	}
}

// failingWriter accepts okWrites writes, then errors forever.
type failingWriter struct {
	okWrites int
	writes   int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.okWrites {
		return 0, errors.New("broken pipe")
	}
	return len(p), nil
}

func TestClient_PartialFailureReportsAppliedPrefix(t *testing.T) {
	t.Parallel()

	c := NewWriterClient(&failingWriter{okWrites: 2})

	applied, err := c.Dispatch(testOps())
	if err == nil {
		t.Fatal("expected write error")
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
}

func TestClient_ScalerOption(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewWriterClient(&buf, WithScaler(ScalerFitContain))

	if _, err := c.Dispatch(testOps()[:1]); err != nil {
		t.Fatal(err)
	}
	lines := decodeLines(t, buf.String())
	if lines[0]["scaler"] != ScalerFitContain {
		t.Errorf("scaler = %v, want %q", lines[0]["scaler"], ScalerFitContain)
	}
}

func TestClient_CloseOnWriterClientIsNoop(t *testing.T) {
	t.Parallel()

	c := NewWriterClient(&bytes.Buffer{})
	if err := c.Close(); err != nil {
		t.Errorf("close on writer client: %v", err)
	}
}
