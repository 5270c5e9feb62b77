package sonyaces

import "strings"

// ColorSpace describes one Sony input encoding and its conversion into
// scene-linear ACES primaries.
type ColorSpace struct {
	// Name follows the ACES config convention: "<transfer> - <gamut>",
	// "Curve - <transfer>" for curve-only spaces, "Linear - <gamut>" for
	// primaries-only spaces.
	Name    string
	Aliases []string
	Family  string

	// ACESTransformID is set for full IDTs (curve plus gamut), empty for
	// curve-only and primaries-only spaces.
	ACESTransformID string

	Transfer TransferFunction
	Gamut    Gamut
}

// Convert maps one encoded pixel into scene-linear ACES. Each channel is
// decoded independently through the transfer curve, the result is remapped
// through the gamut matrix, and alpha passes through unchanged.
func (cs ColorSpace) Convert(r, g, b, a float64) (float64, float64, float64, float64) {
	lr := cs.Transfer.Decode(r)
	lg := cs.Transfer.Decode(g)
	lb := cs.Transfer.Decode(b)
	or, og, ob := cs.Gamut.ToACES().Apply(lr, lg, lb)
	return or, og, ob, a
}

// SLog2SGamutDaylightToACES converts one S-Log2 encoded pixel in the S-Gamut
// Daylight encoding gamut into scene-linear ACES, alpha untouched.
func SLog2SGamutDaylightToACES(r, g, b, a float64) (float64, float64, float64, float64) {
	lr := SLog2ToLinear(r)
	lg := SLog2ToLinear(g)
	lb := SLog2ToLinear(b)
	or, og, ob := SGamutDaylightToACES.Apply(lr, lg, lb)
	return or, og, ob, a
}

const sonyFamily = "Input/Sony"

func idt(transfer TransferFunction, gamut Gamut, aliases ...string) ColorSpace {
	id := "IDT.Sony." + strings.ReplaceAll(transfer.String(), "-", "") + "_" +
		strings.ReplaceAll(strings.ReplaceAll(gamut.String(), "-", ""), " ", "_") +
		"_10i.a1.v1"

	return ColorSpace{
		Name:            transfer.String() + " - " + gamut.String(),
		Aliases:         aliases,
		Family:          sonyFamily,
		ACESTransformID: id,
		Transfer:        transfer,
		Gamut:           gamut,
	}
}

func curveOnly(transfer TransferFunction, aliases ...string) ColorSpace {
	return ColorSpace{
		Name:     "Curve - " + transfer.String(),
		Aliases:  aliases,
		Family:   sonyFamily,
		Transfer: transfer,
	}
}

func linearOnly(gamut Gamut, aliases ...string) ColorSpace {
	return ColorSpace{
		Name:    "Linear - " + gamut.String(),
		Aliases: aliases,
		Family:  sonyFamily,
		Gamut:   gamut,
	}
}

// ColorSpaces returns the supported Sony colorspaces: the full IDTs, the
// linearization-only curves, and the primaries-only gamut maps.
func ColorSpaces() []ColorSpace {
	return []ColorSpace{
		idt(TransferSLog1, GamutSGamut, "slog1_sgamut"),
		idt(TransferSLog2, GamutSGamut, "slog2_sgamut"),
		idt(TransferSLog2, GamutSGamutDaylight, "slog2_sgamutday"),
		idt(TransferSLog2, GamutSGamutTungsten, "slog2_sgamuttung"),
		idt(TransferSLog3, GamutSGamut3, "slog3_sgamut3"),
		idt(TransferSLog3, GamutSGamut3Cine, "slog3_sgamutcine"),
		idt(TransferSLog3, GamutVeniceSGamut3, "slog3_venice_sgamut3"),
		idt(TransferSLog3, GamutVeniceSGamut3Cine, "slog3_venice_sgamutcine"),

		curveOnly(TransferSLog1, "crv_slog1"),
		curveOnly(TransferSLog2, "crv_slog2"),
		curveOnly(TransferSLog3, "crv_slog3"),

		linearOnly(GamutSGamut, "lin_sgamut"),
		linearOnly(GamutSGamutDaylight, "lin_sgamutday"),
		linearOnly(GamutSGamutTungsten, "lin_sgamuttung"),
		linearOnly(GamutSGamut3Cine, "lin_sgamut3cine"),
		linearOnly(GamutSGamut3, "lin_sgamut3"),
		linearOnly(GamutVeniceSGamut3, "lin_venice_sgamut3"),
		linearOnly(GamutVeniceSGamut3Cine, "lin_venice_sgamut3cine"),
	}
}

// Lookup finds a colorspace by its name or one of its aliases.
// Matching is case-insensitive.
func Lookup(name string) (ColorSpace, bool) {
	for _, cs := range ColorSpaces() {
		if strings.EqualFold(cs.Name, name) {
			return cs, true
		}
		for _, alias := range cs.Aliases {
			if strings.EqualFold(alias, name) {
				return cs, true
			}
		}
	}
	return ColorSpace{}, false
}
