package entity

import (
	"testing"

	"github.com/vovakirdan/tui-animate/internal/core"
)

func TestParseSprite(t *testing.T) {
	s := ParseSprite("\n><>\n ><(((>\n", "\nrrr\n yYYYYg\n", core.ColorBlue)

	if s.Height() != 2 {
		t.Errorf("Height() = %d, expected 2", s.Height())
	}
	if s.Width() != 7 {
		t.Errorf("Width() = %d, expected 7", s.Width())
	}

	c, ok := s.Cell(0, 0)
	if !ok || c.Rune != '>' || c.Fg != core.ColorRed {
		t.Errorf("Cell(0, 0) = %+v, expected red '>'", c)
	}

	c, _ = s.Cell(2, 1)
	if c.Fg != core.ColorBrightYellow {
		t.Errorf("Uppercase mask letter should be bright, got %v", c.Fg)
	}

	// Unknown mask rune keeps the default color
	c, _ = s.Cell(0, 1)
	if c.Fg != core.ColorBlue {
		t.Errorf("Space in mask should keep default color, got %v", c.Fg)
	}

	// Rows shorter than the sprite width have no cells
	if _, ok := s.Cell(5, 0); ok {
		t.Error("Cell past a short row should not exist")
	}
}

func TestParseSpriteWithoutMask(t *testing.T) {
	s := ParseSprite("ab", "", core.ColorGreen)
	for x := 0; x < 2; x++ {
		c, ok := s.Cell(x, 0)
		if !ok || c.Fg != core.ColorGreen {
			t.Errorf("Cell(%d, 0) = %+v, expected green", x, c)
		}
	}
}

func TestResultMerge(t *testing.T) {
	base := Result{X: Int(1), Y: Int(2)}
	merged := base.Merge(Result{Y: Int(5), Frame: Int(3)})

	if *merged.X != 1 || *merged.Y != 5 || *merged.Frame != 3 || merged.Z != nil {
		t.Errorf("Merge() = x=%v y=%v z=%v frame=%v", *merged.X, *merged.Y, merged.Z, *merged.Frame)
	}
	if !(Result{}).Empty() {
		t.Error("Zero Result should be empty")
	}
}
