package views

import "testing"

func TestPaginator_Follow(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(10)

	for i := 0; i < 4; i++ {
		p.CursorDown()
	}
	if got := p.Cursor(); got != 4 {
		t.Fatalf("Cursor() = %d, want 4", got)
	}
	start, end := p.VisibleRange()
	if start != 2 || end != 5 {
		t.Errorf("VisibleRange() = %d,%d, want 2,5", start, end)
	}

	p.CursorUp()
	p.CursorUp()
	p.CursorUp()
	start, end = p.VisibleRange()
	if start != 1 || end != 4 {
		t.Errorf("VisibleRange() = %d,%d, want 1,4", start, end)
	}
}

func TestPaginator_Clamp(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		cursor     int
		newTotal   int
		wantCursor int
		wantStart  int
	}{
		{"shrink below cursor", 10, 9, 4, 3, 1},
		{"empty list", 10, 5, 0, 0, 0},
		{"grow keeps cursor", 4, 2, 10, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginator(3)
			p.SetTotal(tt.total)
			p.SetCursor(tt.cursor)
			p.SetTotal(tt.newTotal)

			if got := p.Cursor(); got != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.wantCursor)
			}
			if start, _ := p.VisibleRange(); start != tt.wantStart {
				t.Errorf("start = %d, want %d", start, tt.wantStart)
			}
		})
	}
}

func TestPaginator_Pages(t *testing.T) {
	p := NewPaginator(4)
	p.SetTotal(10)

	p.PageDown()
	if p.Cursor() != 4 {
		t.Errorf("after PageDown Cursor() = %d, want 4", p.Cursor())
	}
	p.PageDown()
	p.PageDown()
	if p.Cursor() != 9 {
		t.Errorf("PageDown must clamp, Cursor() = %d", p.Cursor())
	}
	p.PageUp()
	p.PageUp()
	p.PageUp()
	if p.Cursor() != 0 {
		t.Errorf("PageUp must clamp, Cursor() = %d", p.Cursor())
	}
}
