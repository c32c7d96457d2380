package slope

import "testing"

func TestDiagonal(t *testing.T) {
	var s Slope
	s.Setup(0, 0, 64, 64)

	if s.IsXMajor() {
		t.Error("expected diagonal slope to not be X-major")
	}
	if s.IsNegative() {
		t.Error("expected positive slope")
	}
	if s.DX() != One {
		t.Errorf("DX = %d, want %d", s.DX(), One)
	}

	if got := s.XStart(0); got != 0 {
		t.Errorf("XStart(0) = %d, want 0", got)
	}
	if got := s.XEnd(0); got != 0 {
		t.Errorf("XEnd(0) = %d, want 0", got)
	}
	if got := s.XStart(63); got != 63 {
		t.Errorf("XStart(63) = %d, want 63", got)
	}
	if got := s.XEnd(63); got != 63 {
		t.Errorf("XEnd(63) = %d, want 63", got)
	}
}

func TestYMajor(t *testing.T) {
	var s Slope
	s.Setup(0, 0, 10, 100)

	if s.IsXMajor() {
		t.Fatal("expected Y-major slope")
	}

	prev := int32(-1)
	for y := int32(0); y < 100; y++ {
		start, end := s.XStart(y), s.XEnd(y)
		if start != end {
			t.Fatalf("y=%d: XStart(%d) != XEnd(%d), Y-major spans must be single-pixel", y, start, end)
		}
		if start < prev {
			t.Fatalf("y=%d: X did not progress monotonically (%d -> %d)", y, prev, start)
		}
		prev = start
	}
}

func TestNegativeMirror(t *testing.T) {
	const n, k = 69, 20

	var pos, neg Slope
	pos.Setup(0, 0, n, n-k)
	neg.Setup(n, 0, 0, n-k)

	for y := int32(0); y < n-k; y++ {
		ps, pe := pos.XStart(y), pos.XEnd(y)
		ns, ne := neg.XStart(y), neg.XEnd(y)
		// Negative spans run rightmost to leftmost; swap to compare.
		ns, ne = ne, ns

		// Pixel column c of [0, n) mirrors to column n-1-c.
		wantStart, wantEnd := n-1-pe, n-1-ps
		if ns != wantStart || ne != wantEnd {
			t.Errorf("y=%d: negative span (%d..%d) is not the mirror of positive span (%d..%d) within columns [0,%d)", y, ns, ne, ps, pe, n)
		}
	}
}

func TestOrientationSymmetry(t *testing.T) {
	var a, b Slope
	a.Setup(5, 3, 80, 150)
	b.Setup(80, 150, 5, 3)

	if a.DX() != b.DX() || a.IsXMajor() != b.IsXMajor() || a.IsNegative() != b.IsNegative() {
		t.Fatalf("setup is not orientation-symmetric: %+v vs %+v", a, b)
	}

	for y := int32(3); y <= 150; y++ {
		if a.FracXStart(y) != b.FracXStart(y) {
			t.Errorf("y=%d: FracXStart differs between orientations", y)
		}
		if a.FracXEnd(y) != b.FracXEnd(y) {
			t.Errorf("y=%d: FracXEnd differs between orientations", y)
		}
	}
}

func TestSetupIsTotal(t *testing.T) {
	for y0 := int32(0); y0 <= Height; y0 += 31 {
		for y1 := int32(0); y1 <= Height; y1 += 29 {
			for x0 := int32(0); x0 <= Width; x0 += 61 {
				for x1 := int32(0); x1 <= Width; x1 += 53 {
					if x0 == x1 && y0 == y1 {
						continue
					}
					var s Slope
					s.Setup(x0, y0, x1, y1)
					if s.DX() < 0 {
						t.Fatalf("DX() < 0 for (%d,%d)-(%d,%d)", x0, y0, x1, y1)
					}
				}
			}
		}
	}
}

func TestHorizontalEdge(t *testing.T) {
	var s Slope
	s.Setup(10, 50, 200, 51)

	if got := s.XStart(50); got != 10 {
		t.Errorf("XStart(50) = %d, want 10", got)
	}
	if got := s.XEnd(50); got < 199 {
		t.Errorf("XEnd(50) = %d, want >= 199", got)
	}
}
