package sonyaces

import "math"

// 10-bit legal range endpoints shared by the S-Log1/2 fits, expressed as
// fractions of the 1023 code-value scale.
const (
	slogBlack = 64.0 / 1023.0
	slogWhite = 940.0 / 1023.0

	// Code value 1.0 IRE corresponds to 0.9 scene-linear units for Sony's
	// calibration.
	slogExposure = 0.9
)

const (
	slog12Break  = 0.030001222851889303
	slog2ToeGain = 0.28258064516129

	// S-Log1 switches branches at code value 90; the toe still pivots on the
	// shared breakpoint constant, as published.
	slog1Break = (90.0 - 64.0) / (940.0 - 64.0)
)

// SLog1ToLinear decodes one S-Log1 encoded value, given as a fraction of the
// 10-bit code-value scale, into a scene-linear value.
func SLog1ToLinear(s float64) float64 {
	x := (s - slogBlack) / (slogWhite - slogBlack)
	var y float64
	if x < slog1Break {
		y = (x - slog12Break) / 5.0
	} else {
		y = math.Pow(10.0, (x-0.616596-0.03)/0.432699) - 0.037584
	}
	return y * slogExposure
}

// SLog2ToLinear decodes one S-Log2 encoded value, given as a fraction of the
// 10-bit code-value scale, into a scene-linear value.
//
// The exponent offset is kept as the literal 0.616596+0.03 used by the
// published fit; the sum must not be folded into a single constant.
func SLog2ToLinear(s float64) float64 {
	x := (s - slogBlack) / (slogWhite - slogBlack)
	var y float64
	if x < slog12Break {
		y = (x - slog12Break) * slog2ToeGain
	} else {
		y = 219.0 * (math.Pow(10.0, (x-0.616596-0.03)/0.432699) - 0.037584) / 155.0
	}
	return y * slogExposure
}

// SLog3ToLinear decodes one S-Log3 encoded value, given as a fraction of the
// 10-bit code-value scale, into a scene-linear value. Unlike S-Log1/2 the
// published S-Log3 fit works directly on 10-bit code values and already
// includes its exposure scaling.
func SLog3ToLinear(s float64) float64 {
	cv := s * 1023.0
	if cv >= 171.2102946929 {
		return math.Pow(10.0, (cv-420.0)/261.5)*(0.18+0.01) - 0.01
	}
	return (cv - 95.0) * 0.01125000 / (171.2102946929 - 95.0)
}

// Decode runs one encoded channel value through the curve. TransferLinear is
// the identity. No clamping is performed anywhere; out-of-range inputs
// propagate through the arithmetic as-is.
func (tf TransferFunction) Decode(s float64) float64 {
	switch tf {
	case TransferSLog1:
		return SLog1ToLinear(s)
	case TransferSLog2:
		return SLog2ToLinear(s)
	case TransferSLog3:
		return SLog3ToLinear(s)
	default:
		return s
	}
}
