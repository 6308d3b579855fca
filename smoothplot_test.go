package smoothplot

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestScaling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	S := Scaling(2, -1)
	q := S.Transform(P(3, 5))
	if !q.Equal(P(6, -5)) {
		t.Errorf("Expected (3,5) scaled by (2,-1) to be (6,-5), is %v", q)
	}
}

func TestCombineAppliesLeftFirst(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// flip y, then translate: (x,y) -> (x+10, 110-y)
	M := Scaling(1, -1).Combine(Translation(P(10, 110)))
	q := M.Transform(P(0, 0))
	if !q.Equal(P(10, 110)) {
		t.Errorf("Expected origin to map to (10,110), is %v", q)
	}
	q = M.Transform(P(30, 42))
	if !q.Equal(P(40, 68)) {
		t.Errorf("Expected (30,42) to map to (40,68), is %v", q)
	}
}

func TestReflectInvolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []Pair{P(0, 0), P(1, 2), P(-3.5, 7), P(12.333, 10)}
	c := P(10, 10)
	for _, p := range pts {
		if r := Reflect(Reflect(p, c), c); r != p {
			t.Errorf("Expected reflection to be an involution for %v, got %v", p, r)
		}
	}
	if r := Reflect(P(12.333, 10), c); r != P(2*10-12.333, 10) {
		t.Errorf("Expected reflection of (12.333,10) through (10,10), got %v", r)
	}
}

func TestLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, q := P(0, 0), P(10, 0)
	if r := Lerp(p, q, 0.3); !r.Equal(P(3, 0)) {
		t.Errorf("Expected lerp at 0.3 to be (3,0), is %v", r)
	}
	if r := Lerp(p, q, 0); r != p {
		t.Errorf("Expected lerp at 0 to be p, is %v", r)
	}
	if r := Lerp(p, q, 1); !r.Equal(q) {
		t.Errorf("Expected lerp at 1 to be q, is %v", r)
	}
}
