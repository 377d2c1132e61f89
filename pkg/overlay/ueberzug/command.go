// ABOUTME: ueberzug layer JSON line protocol: add/remove commands
// ABOUTME: Hand-written easyjson marshaling; no reflection on the redraw hot path

package ueberzug

import (
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/ueberlay/pkg/overlay"
)

// Action is the command verb of the ueberzug layer protocol.
type Action string

const (
	// ActionAdd creates or replaces the placement with the same identifier.
	ActionAdd Action = "add"
	// ActionRemove deletes the placement with the given identifier.
	ActionRemove Action = "remove"
)

// Scaler names accepted by ueberzug for fitting an image into its box.
const (
	ScalerContain     = "contain"
	ScalerCover       = "cover"
	ScalerCrop        = "crop"
	ScalerDistort     = "distort"
	ScalerFitContain  = "fit_contain"
	ScalerForcedCover = "forced_cover"
)

// Command is one JSON line sent to the renderer's command channel.
// Geometry fields are only meaningful for adds. Draw asks the renderer to
// repaint after applying this command; batches set it on the final command
// only, which is what makes a commit one visual update.
type Command struct {
	Action     Action
	Identifier string
	X          int
	Y          int
	Width      int
	Height     int
	Path       string
	Scaler     string
	Draw       bool
}

// commandFor translates one registry operation into a protocol command.
// Creates and updates both map to "add": ueberzug replaces an existing
// identifier in place, which is exactly the update semantic we need.
func commandFor(op overlay.Op, scaler string, draw bool) Command {
	if op.Kind == overlay.OpDelete {
		return Command{
			Action:     ActionRemove,
			Identifier: string(op.ID),
			Draw:       draw,
		}
	}
	return Command{
		Action:     ActionAdd,
		Identifier: string(op.ID),
		X:          op.State.Geometry.Col,
		Y:          op.State.Geometry.Row,
		Width:      op.State.Geometry.Width,
		Height:     op.State.Geometry.Height,
		Path:       op.State.Payload,
		Scaler:     scaler,
		Draw:       draw,
	}
}

// MarshalEasyJSON writes the command as one JSON object.
func (c Command) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"action":`)
	w.String(string(c.Action))
	w.RawString(`,"identifier":`)
	w.String(c.Identifier)
	if c.Action == ActionAdd {
		w.RawString(`,"x":`)
		w.Int(c.X)
		w.RawString(`,"y":`)
		w.Int(c.Y)
		w.RawString(`,"width":`)
		w.Int(c.Width)
		w.RawString(`,"height":`)
		w.Int(c.Height)
		w.RawString(`,"path":`)
		w.String(c.Path)
		if c.Scaler != "" {
			w.RawString(`,"scaler":`)
			w.String(c.Scaler)
		}
	}
	w.RawString(`,"draw":`)
	w.Bool(c.Draw)
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler via the easyjson writer.
func (c Command) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	c.MarshalEasyJSON(&w)
	return w.BuildBytes()
}
