package sonyaces

// TransferFunction identifies a supported Sony log transfer curve.
type TransferFunction int

const (
	TransferLinear TransferFunction = iota
	TransferSLog1
	TransferSLog2
	TransferSLog3
)

func (tf TransferFunction) String() string {
	switch tf {
	case TransferSLog1:
		return "S-Log1"
	case TransferSLog2:
		return "S-Log2"
	case TransferSLog3:
		return "S-Log3"
	default:
		return "Linear"
	}
}

// Gamut identifies a supported Sony encoding gamut.
type Gamut int

const (
	GamutNone Gamut = iota
	GamutSGamut
	GamutSGamutDaylight
	GamutSGamutTungsten
	GamutSGamut3
	GamutSGamut3Cine
	GamutVeniceSGamut3
	GamutVeniceSGamut3Cine
)

func (g Gamut) String() string {
	switch g {
	case GamutSGamut:
		return "S-Gamut"
	case GamutSGamutDaylight:
		return "S-Gamut Daylight"
	case GamutSGamutTungsten:
		return "S-Gamut Tungsten"
	case GamutSGamut3:
		return "S-Gamut3"
	case GamutSGamut3Cine:
		return "S-Gamut3.Cine"
	case GamutVeniceSGamut3:
		return "Venice S-Gamut3"
	case GamutVeniceSGamut3Cine:
		return "Venice S-Gamut3.Cine"
	default:
		return "None"
	}
}
