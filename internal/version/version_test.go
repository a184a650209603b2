package version_test

import (
	"testing"

	"github.com/go-mclib/limbo/internal/version"
)

func TestOrdering(t *testing.T) {
	if !version.V1_16.IsAfterInclusive(version.V1_8) {
		t.Fatalf("expected 1.16 >= 1.8")
	}
	if version.V1_8.IsAfterInclusive(version.V1_16) {
		t.Fatalf("expected 1.8 < 1.16")
	}
	if !version.V1_16.IsAfterInclusive(version.V1_16) {
		t.Fatalf("expected version to be >= itself")
	}
}

func TestFeaturePredicates(t *testing.T) {
	cases := []struct {
		v    version.ProtocolVersion
		want bool
	}{
		{version.V1_20, false},
		{version.V1_20_2, true},
		{version.V1_21_5, true},
	}
	for _, c := range cases {
		if got := c.v.SupportsConfigurationState(); got != c.want {
			t.Errorf("SupportsConfigurationState(%s) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestKnownTestVectors(t *testing.T) {
	if version.V1_16_4.Name() != "1.16.5" {
		t.Fatalf("V1_16_4.Name() = %q, want 1.16.5", version.V1_16_4.Name())
	}
	if version.V1_8.Name() != "1.8.9" {
		t.Fatalf("V1_8.Name() = %q, want 1.8.9", version.V1_8.Name())
	}
	if version.V1_20_3.Name() != "1.20.4" {
		t.Fatalf("V1_20_3.Name() = %q, want 1.20.4", version.V1_20_3.Name())
	}
	if version.V1_21.Name() != "1.21.1" {
		t.Fatalf("V1_21.Name() = %q, want 1.21.1", version.V1_21.Name())
	}
}

func TestParse(t *testing.T) {
	v, ok := version.Parse(754)
	if !ok || v != version.V1_16_4 {
		t.Fatalf("Parse(754) = %v, %v", v, ok)
	}
	_, ok = version.Parse(999999)
	if ok {
		t.Fatalf("expected unknown protocol number to fail")
	}
}

func TestLatestResolvesToNewest(t *testing.T) {
	if version.Latest.Name() != version.V1_21_5.Name() {
		t.Fatalf("Latest.Name() = %q, want %q", version.Latest.Name(), version.V1_21_5.Name())
	}
}

func TestInRange(t *testing.T) {
	if !version.V1_16_4.InRange(version.Any, version.Any) {
		t.Fatalf("expected unbounded range to admit any version")
	}
	if version.V1_16.InRange(version.V1_16_1, version.Any) {
		t.Fatalf("expected 1.16 to be excluded by a lower bound of 1.16.1")
	}
	if !version.V1_9_1.InRange(version.Any, version.V1_16) {
		t.Fatalf("expected 1.9.1 to satisfy an exclusive upper bound of 1.16")
	}
	if version.V1_16.InRange(version.Any, version.V1_16) {
		t.Fatalf("expected exclusive upper bound to exclude the bound itself")
	}
}

func TestSupportedFlag(t *testing.T) {
	if version.Any.Supported() {
		t.Fatalf("Any should not report as a supported concrete version")
	}
	if !version.V1_7_2.Supported() {
		t.Fatalf("V1_7_2 should be supported")
	}
}
