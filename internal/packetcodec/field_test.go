package packetcodec

import (
	"testing"

	"github.com/go-mclib/limbo/internal/version"
)

func TestFieldRange_Always(t *testing.T) {
	if !Always.Present(version.V1_7_2) || !Always.Present(version.V1_21_5) {
		t.Fatal("expected Always to be present at every version")
	}
}

func TestFieldRange_Before(t *testing.T) {
	r := Before(version.V1_9_1)
	if !r.Present(version.V1_9) {
		t.Fatal("expected present just before the boundary")
	}
	if r.Present(version.V1_9_1) {
		t.Fatal("expected absent at the exclusive upper boundary")
	}
}

func TestFieldRange_From(t *testing.T) {
	r := From(version.V1_9_1)
	if r.Present(version.V1_9) {
		t.Fatal("expected absent before lower boundary")
	}
	if !r.Present(version.V1_9_1) {
		t.Fatal("expected present at inclusive lower boundary")
	}
}

func TestFieldRange_Between(t *testing.T) {
	r := Between(version.V1_9, version.V1_12)
	if r.Present(version.V1_8) || r.Present(version.V1_12) {
		t.Fatal("expected boundaries to be respected")
	}
	if !r.Present(version.V1_10) {
		t.Fatal("expected present inside the range")
	}
}
