package math

import (
	"math"
	"testing"
)

var (
	triV0 = Vec3f{0, 0, 0}
	triV1 = Vec3f{1, 0, 0}
	triV2 = Vec3f{0, 1, 0}
)

func TestNewRayZeroDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRay with zero direction should panic")
		}
	}()
	NewRay(Vec3f{}, Vec3f{})
}

func TestRayTriangleIntersection(t *testing.T) {
	tests := []struct {
		name      string
		origin    Vec3f
		direction Vec3f
		wantHit   bool
		wantPoint Vec3f
	}{
		{"through interior", Vec3f{0.25, 0.25, 1}, Vec3f{0, 0, -1}, true, Vec3f{0.25, 0.25, 0}},
		{"from below", Vec3f{0.25, 0.25, -2}, Vec3f{0, 0, 1}, true, Vec3f{0.25, 0.25, 0}},
		{"aimed at v0", Vec3f{0, 0, 1}, Vec3f{0, 0, -1}, true, triV0},
		{"aimed at v0 obliquely", Vec3f{-1, -1, 1}, Vec3f{1, 1, -1}, true, triV0},
		{"on hypotenuse", Vec3f{0.5, 0.5, 3}, Vec3f{0, 0, -1}, true, Vec3f{0.5, 0.5, 0}},
		{"parallel to plane", Vec3f{0.25, 0.25, 1}, Vec3f{1, 0, 0}, false, Vec3f{}},
		{"parallel in plane", Vec3f{-1, 0.25, 0}, Vec3f{1, 0, 0}, false, Vec3f{}},
		{"u out of range", Vec3f{-0.5, 0.25, 1}, Vec3f{0, 0, -1}, false, Vec3f{}},
		{"v out of range", Vec3f{0.25, -0.5, 1}, Vec3f{0, 0, -1}, false, Vec3f{}},
		{"u plus v out of range", Vec3f{0.75, 0.75, 1}, Vec3f{0, 0, -1}, false, Vec3f{}},
		{"behind origin", Vec3f{0.25, 0.25, 1}, Vec3f{0, 0, 1}, false, Vec3f{}},
		{"nan origin", Vec3f{float32(math.NaN()), 0.25, 1}, Vec3f{0, 0, -1}, false, Vec3f{}},
		{"nan direction", Vec3f{0.25, 0.25, 1}, Vec3f{0, float32(math.NaN()), -1}, false, Vec3f{}},
		{"infinite origin", Vec3f{float32(math.Inf(1)), 0.25, 1}, Vec3f{0, 0, -1}, false, Vec3f{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRay(tt.origin, tt.direction)
			got, ok := r.IntersectionWithTriangle(triV0, triV1, triV2)
			if ok != tt.wantHit {
				t.Fatalf("IntersectionWithTriangle() hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && !got.Equal(tt.wantPoint) {
				t.Errorf("IntersectionWithTriangle() = %v, want %v", got, tt.wantPoint)
			}
			if r.IntersectsTriangle(triV0, triV1, triV2) != tt.wantHit {
				t.Errorf("IntersectsTriangle() disagrees with IntersectionWithTriangle()")
			}
		})
	}
}

func TestRayTriangleWindingIndependent(t *testing.T) {
	r := NewRay(Vec3f{0.2, 0.3, 5}, Vec3f{0, 0, -1})
	front, okFront := r.IntersectionWithTriangle(triV0, triV1, triV2)
	back, okBack := r.IntersectionWithTriangle(triV0, triV2, triV1)
	if !okFront || !okBack {
		t.Fatalf("expected both windings to hit, got %v and %v", okFront, okBack)
	}
	if !front.Equal(back) {
		t.Errorf("hit points differ by winding: %v vs %v", front, back)
	}
}

func TestRayRayIntersection(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Rayf
		wantHit   bool
		wantPoint Vec3f
	}{
		{
			name:      "crossing axes",
			a:         NewRay(Vec3f{-1, 0, 0}, Vec3f{1, 0, 0}),
			b:         NewRay(Vec3f{0, -1, 0}, Vec3f{0, 1, 0}),
			wantHit:   true,
			wantPoint: Vec3f{0, 0, 0},
		},
		{
			name:      "crossing off origin",
			a:         NewRay(Vec3f{0, 0, 2}, Vec3f{1, 1, 0}),
			b:         NewRay(Vec3f{4, 0, 2}, Vec3f{-1, 1, 0}),
			wantHit:   true,
			wantPoint: Vec3f{2, 2, 2},
		},
		{
			name:      "crossing in yz plane",
			a:         NewRay(Vec3f{3, 0, 0}, Vec3f{0, 0, 1}),
			b:         NewRay(Vec3f{3, -2, 5}, Vec3f{0, 1, 0}),
			wantHit:   true,
			wantPoint: Vec3f{3, 0, 5},
		},
		{
			name:    "skew",
			a:       NewRay(Vec3f{0, 0, 0}, Vec3f{1, 0, 0}),
			b:       NewRay(Vec3f{0, 0, 1}, Vec3f{0, 1, 0}),
			wantHit: false,
		},
		{
			name:    "parallel",
			a:       NewRay(Vec3f{0, 0, 0}, Vec3f{1, 0, 0}),
			b:       NewRay(Vec3f{0, 1, 0}, Vec3f{2, 0, 0}),
			wantHit: false,
		},
		{
			name:    "collinear",
			a:       NewRay(Vec3f{0, 0, 0}, Vec3f{1, 0, 0}),
			b:       NewRay(Vec3f{5, 0, 0}, Vec3f{-1, 0, 0}),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.IntersectionWithRay(tt.b)
			if ok != tt.wantHit {
				t.Fatalf("IntersectionWithRay() hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && !got.Equal(tt.wantPoint) {
				t.Errorf("IntersectionWithRay() = %v, want %v", got, tt.wantPoint)
			}
			if tt.a.IntersectsRay(tt.b) != tt.wantHit {
				t.Error("IntersectsRay() disagrees with IntersectionWithRay()")
			}
		})
	}
}

func TestRayDistanceToRay(t *testing.T) {
	tests := []struct {
		name string
		a, b Rayd
		want float64
	}{
		{
			name: "skew unit apart",
			a:    NewRay(Vec3d{0, 0, 0}, Vec3d{1, 0, 0}),
			b:    NewRay(Vec3d{0, 0, 1}, Vec3d{0, 1, 0}),
			want: 1,
		},
		{
			name: "skew offset origins",
			a:    NewRay(Vec3d{5, 0, 0}, Vec3d{1, 0, 0}),
			b:    NewRay(Vec3d{0, 7, 3}, Vec3d{0, 1, 0}),
			want: 3,
		},
		{
			name: "parallel",
			a:    NewRay(Vec3d{0, 0, 0}, Vec3d{0, 0, 1}),
			b:    NewRay(Vec3d{3, 4, 10}, Vec3d{0, 0, -2}),
			want: 5,
		},
		{
			name: "intersecting",
			a:    NewRay(Vec3d{-1, 0, 0}, Vec3d{1, 0, 0}),
			b:    NewRay(Vec3d{0, -1, 0}, Vec3d{0, 1, 0}),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceToRay(tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceToRay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRayDistanceToPoint(t *testing.T) {
	r := NewRay(Vec3d{1, 1, 0}, Vec3d{0, 0, 2})
	if got := r.DistanceToPoint(Vec3d{4, 5, 9}); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceToPoint() = %v, want 5", got)
	}
}

func TestRayPredicates(t *testing.T) {
	x := NewRay(Vec3f{0, 0, 0}, Vec3f{1, 0, 0})
	y := NewRay(Vec3f{0, 0, 0}, Vec3f{0, 1, 0})
	shifted := NewRay(Vec3f{3, 0, 0}, Vec3f{-2, 0, 0})

	if !x.IsOrthogonalTo(y) {
		t.Error("x and y rays should be orthogonal")
	}
	if x.IsParallelTo(y) {
		t.Error("x and y rays should not be parallel")
	}
	if !x.IsParallelTo(shifted) {
		t.Error("x and shifted rays should be parallel")
	}
	if !x.Equal(shifted) {
		t.Error("rays on the same line should be equal")
	}
	if x.Equal(y) {
		t.Error("x and y rays should not be equal")
	}
	if !x.ContainsPoint(Vec3f{7, 0, 0}) {
		t.Error("(7,0,0) should lie on the x ray")
	}
	if x.ContainsPoint(Vec3f{1, 1, 0}) {
		t.Error("(1,1,0) should not lie on the x ray")
	}
	if got := RadToDeg(x.AngleBetween(y)); math.Abs(float64(got)-90) > 1e-3 {
		t.Errorf("AngleBetween() = %v deg, want 90", got)
	}
	if got := shifted.PointAt(1.5); !got.Equal(Vec3f{0, 0, 0}) {
		t.Errorf("PointAt(1.5) = %v, want (0, 0, 0)", got)
	}
}
