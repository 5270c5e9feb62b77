package sonyaces

// Mat3 is a 3x3 matrix in row-major order, applied as a linear map over RGB.
type Mat3 [9]float64

// Apply multiplies the matrix with the column vector (r, g, b).
func (m Mat3) Apply(r, g, b float64) (float64, float64, float64) {
	return m[0]*r + m[1]*g + m[2]*b,
		m[3]*r + m[4]*g + m[5]*b,
		m[6]*r + m[7]*g + m[8]*b
}

// Identity is the no-op gamut map, used by curve-only colorspaces.
var Identity = Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Sony linear RGB to ACES AP0 matrices from the ACES OCIO config IDTs.
// The literals are reproduced digit-for-digit from the published transforms;
// reference LUT output depends on them bit-for-bit.
var (
	SGamutToACES = Mat3{
		0.754338638, 0.133697046, 0.111968437,
		0.021198141, 1.005410934, -0.026610548,
		-0.009756991, 0.004508563, 1.005253201,
	}

	SGamutDaylightToACES = Mat3{
		0.8764457030, 0.0145411681, 0.1090131290,
		0.0774075345, 0.9529571767, -0.0303647111,
		0.0573564351, -0.1151066335, 1.0577501984,
	}

	SGamutTungstenToACES = Mat3{
		1.0110238740, -0.1362526051, 0.1252287310,
		0.1011994504, 0.9562196265, -0.0574190769,
		0.0600766530, -0.1010185315, 1.0409418785,
	}

	SGamut3ToACES = Mat3{
		0.7529825954, 0.1433702162, 0.1036471884,
		0.0217076974, 1.0153188355, -0.0370265329,
		-0.0094160528, 0.0033704179, 1.0060456349,
	}

	SGamut3CineToACES = Mat3{
		0.6387886672, 0.2723514337, 0.0888598992,
		-0.0039159061, 1.0880732308, -0.0841573249,
		-0.0299072021, -0.0264325799, 1.0563397820,
	}

	VeniceSGamut3ToACES = Mat3{
		0.7933297411, 0.0890786256, 0.1175916333,
		0.0155810585, 1.0327123069, -0.0482933654,
		-0.0188647478, 0.0127694121, 1.0060953358,
	}

	VeniceSGamut3CineToACES = Mat3{
		0.6742570921, 0.2205717359, 0.1051711720,
		-0.0093136061, 1.1059588614, -0.0966452553,
		-0.0382090673, -0.0179383766, 1.0561474439,
	}
)

// ToACES returns the gamut's matrix into ACES AP0 primaries.
func (g Gamut) ToACES() Mat3 {
	switch g {
	case GamutSGamut:
		return SGamutToACES
	case GamutSGamutDaylight:
		return SGamutDaylightToACES
	case GamutSGamutTungsten:
		return SGamutTungstenToACES
	case GamutSGamut3:
		return SGamut3ToACES
	case GamutSGamut3Cine:
		return SGamut3CineToACES
	case GamutVeniceSGamut3:
		return VeniceSGamut3ToACES
	case GamutVeniceSGamut3Cine:
		return VeniceSGamut3CineToACES
	default:
		return Identity
	}
}
