package sonyaces

import (
	"math"
	"testing"
)

// Both S-Log2 branches should agree at the toe/shoulder boundary.
func TestSLog2ToLinearBranchContinuity(t *testing.T) {
	x := slog12Break

	toe := (x - slog12Break) * slog2ToeGain * slogExposure
	shoulder := 219.0 * (math.Pow(10.0, (x-0.616596-0.03)/0.432699) - 0.037584) / 155.0 * slogExposure

	if diff := math.Abs(toe - shoulder); diff > 1e-6 {
		t.Errorf("branch mismatch at breakpoint: toe=%g shoulder=%g diff=%g", toe, shoulder, diff)
	}
}

func TestSLog3ToLinearBranchContinuity(t *testing.T) {
	s := 171.2102946929 / 1023.0

	toe := (171.2102946929 - 95.0) * 0.01125000 / (171.2102946929 - 95.0)
	shoulder := SLog3ToLinear(s)

	if diff := math.Abs(toe - shoulder); diff > 1e-6 {
		t.Errorf("branch mismatch at breakpoint: toe=%g shoulder=%g diff=%g", toe, shoulder, diff)
	}
}

func TestCurvesMonotonic(t *testing.T) {
	for _, tf := range []TransferFunction{TransferSLog1, TransferSLog2, TransferSLog3} {
		tf := tf
		t.Run(tf.String(), func(t *testing.T) {
			prev := math.Inf(-1)
			for i := 0; i <= 1023; i++ {
				s := float64(i) / 1023.0
				lin := tf.Decode(s)
				if lin < prev {
					t.Fatalf("decode not monotonic at code %d: %g < %g", i, lin, prev)
				}
				prev = lin
			}
		})
	}
}

// Black level input lands exactly on the start of the toe segment.
func TestSLog2ToLinearBlack(t *testing.T) {
	got := SLog2ToLinear(64.0 / 1023.0)
	want := -slog12Break * slog2ToeGain * slogExposure

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("black decode: got %g, want %g", got, want)
	}
	if math.Abs(got-(-0.007631)) > 1e-5 {
		t.Errorf("black decode %g too far from reference -0.007631", got)
	}
}

func TestSLog2ToLinearReferencePoints(t *testing.T) {
	for _, tc := range []struct {
		name   string
		in     float64
		lo, hi float64
	}{
		{name: "mid gray", in: 0.42, lo: 0.31, hi: 0.34},
		{name: "legal white", in: 940.0 / 1023.0, lo: 8.0, hi: 9.0},
		{name: "toe", in: 70.0 / 1023.0, lo: -0.008, hi: 0.0},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := SLog2ToLinear(tc.in)
			if got < tc.lo || got > tc.hi {
				t.Errorf("decode(%g) = %g, want within [%g, %g]", tc.in, got, tc.lo, tc.hi)
			}
		})
	}
}

// Pathological inputs pass through the arithmetic without panics or clamping.
func TestCurvesNoClamping(t *testing.T) {
	if got := SLog2ToLinear(2.0); got <= SLog2ToLinear(940.0/1023.0) {
		t.Errorf("super-white input should overshoot, got %g", got)
	}
	if got := SLog2ToLinear(-1.0); got >= 0 {
		t.Errorf("negative input should stay negative through the toe, got %g", got)
	}
	if got := SLog2ToLinear(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("decode(+Inf) = %g, want +Inf", got)
	}
	if got := SLog2ToLinear(math.NaN()); !math.IsNaN(got) {
		t.Errorf("decode(NaN) = %g, want NaN", got)
	}
}

func TestTransferLinearIdentity(t *testing.T) {
	for _, v := range []float64{-0.5, 0, 0.18, 1, 42} {
		if got := TransferLinear.Decode(v); got != v {
			t.Errorf("linear decode(%g) = %g", v, got)
		}
	}
}
