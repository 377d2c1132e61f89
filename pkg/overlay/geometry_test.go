// ABOUTME: Tests for cell-unit geometry: translation and intersection
// ABOUTME: Covers disjoint, contained, and partially overlapping rectangles

package overlay

import "testing"

func TestRect_Translate(t *testing.T) {
	t.Parallel()

	r := NewRect(2, 3, 5, 4).Translate(Point{Col: 10, Row: 20})
	want := NewRect(12, 23, 5, 4)
	if r != want {
		t.Errorf("got %v, want %v", r, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  Rect
		want  Rect
		empty bool
	}{
		{
			name: "contained",
			a:    NewRect(0, 0, 80, 24),
			b:    NewRect(10, 5, 20, 10),
			want: NewRect(10, 5, 20, 10),
		},
		{
			name: "partial overlap",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
		},
		{
			name:  "disjoint",
			a:     NewRect(0, 0, 5, 5),
			b:     NewRect(10, 10, 5, 5),
			empty: true,
		},
		{
			name:  "touching edges",
			a:     NewRect(0, 0, 5, 5),
			b:     NewRect(5, 0, 5, 5),
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.a.Intersect(tt.b)
			if tt.empty {
				if !got.Empty() {
					t.Errorf("expected empty intersection, got %v", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Empty(t *testing.T) {
	t.Parallel()

	if NewRect(0, 0, 0, 5).Empty() != true {
		t.Error("zero width should be empty")
	}
	if NewRect(0, 0, 5, -1).Empty() != true {
		t.Error("negative height should be empty")
	}
	if NewRect(3, 3, 1, 1).Empty() {
		t.Error("1x1 should not be empty")
	}
}
