package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/vearutop/sonyaces"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "list":
		if err := runList(os.Args[2:]); err != nil {
			fail(err)
		}
	case "bake":
		if err := runBake(os.Args[2:]); err != nil {
			fail(err)
		}
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fail(err)
		}
	case "ramp":
		if err := runRamp(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: sonylut <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  list")
	fmt.Fprintln(os.Stderr, "  bake    -out dir [-space name|alias] [-res 4096] [-min 0] [-max 1]")
	fmt.Fprintln(os.Stderr, "  convert -space name|alias -rgba \"r g b a\"")
	fmt.Fprintln(os.Stderr, "  ramp    -space name|alias -out ramp.png [-w 1024] [-h 64] [-thumb 0]")
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, cs := range sonyaces.ColorSpaces() {
		line := cs.Name
		if len(cs.Aliases) > 0 {
			line += " (" + strings.Join(cs.Aliases, ", ") + ")"
		}
		if cs.ACESTransformID != "" {
			line += " " + cs.ACESTransformID
		}
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}

func runBake(args []string) error {
	fs := flag.NewFlagSet("bake", flag.ContinueOnError)
	outDir := fs.String("out", "", "output directory")
	space := fs.String("space", "", "colorspace name or alias, all curves when empty")
	res := fs.Int("res", 4096, "LUT resolution")
	min := fs.Float64("min", 0, "ramp start")
	max := fs.Float64("max", 1, "ramp end")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outDir == "" {
		return errors.New("missing required arguments")
	}
	if err := os.MkdirAll(filepath.Clean(*outDir), 0o755); err != nil {
		return err
	}

	transfers := []sonyaces.TransferFunction{
		sonyaces.TransferSLog1, sonyaces.TransferSLog2, sonyaces.TransferSLog3,
	}
	if *space != "" {
		cs, ok := sonyaces.Lookup(*space)
		if !ok {
			return fmt.Errorf("unknown colorspace %q", *space)
		}
		if cs.Transfer == sonyaces.TransferLinear {
			return fmt.Errorf("colorspace %q has no transfer curve to bake", cs.Name)
		}
		transfers = []sonyaces.TransferFunction{cs.Transfer}
	}

	for _, tf := range transfers {
		path, err := sonyaces.WriteSPI1DFile(*outDir, tf, *res, *min, *max)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, path)
	}
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	space := fs.String("space", "", "colorspace name or alias")
	rgba := fs.String("rgba", "", "input pixel, four space-separated floats")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *space == "" || *rgba == "" {
		return errors.New("missing required arguments")
	}
	cs, ok := sonyaces.Lookup(*space)
	if !ok {
		return fmt.Errorf("unknown colorspace %q", *space)
	}

	var r, g, b, a float64
	if n, err := fmt.Sscan(*rgba, &r, &g, &b, &a); err != nil || n != 4 {
		return fmt.Errorf("bad -rgba value %q", *rgba)
	}

	or, og, ob, oa := cs.Convert(r, g, b, a)
	fmt.Fprintf(os.Stdout, "%.10f %.10f %.10f %.10f\n", or, og, ob, oa)
	return nil
}

func runRamp(args []string) error {
	fs := flag.NewFlagSet("ramp", flag.ContinueOnError)
	space := fs.String("space", "", "colorspace name or alias")
	outPath := fs.String("out", "", "output PNG")
	w := fs.Int("w", 1024, "ramp width")
	h := fs.Int("h", 64, "ramp height")
	thumb := fs.Int("thumb", 0, "downscale to fit this size, 0 to keep full size")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *space == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	cs, ok := sonyaces.Lookup(*space)
	if !ok {
		return fmt.Errorf("unknown colorspace %q", *space)
	}
	if cs.Transfer == sonyaces.TransferLinear {
		return fmt.Errorf("colorspace %q has no transfer curve to preview", cs.Name)
	}

	img := sonyaces.CurveRamp(cs.Transfer, *w, *h)

	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	defer f.Close()

	if *thumb > 0 {
		return png.Encode(f, sonyaces.Thumbnail(img, *thumb))
	}
	return png.Encode(f, img)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
