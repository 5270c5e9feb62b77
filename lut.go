package sonyaces

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SampleCurve evaluates the transfer decode over an evenly spaced ramp of
// resolution entries covering [fromMin, fromMax]. Samples are stored as
// float32, matching the precision of the shipped ACES config LUTs.
func SampleCurve(tf TransferFunction, resolution int, fromMin, fromMax float64) ([]float32, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("lut resolution %d, need at least 2", resolution)
	}
	if fromMin == fromMax {
		return nil, fmt.Errorf("empty lut domain [%g, %g]", fromMin, fromMax)
	}

	data := make([]float32, resolution)
	for i := range data {
		s := fromMin + (fromMax-fromMin)*float64(i)/float64(resolution-1)
		data[i] = float32(tf.Decode(s))
	}
	return data, nil
}

// WriteSPI1D writes a single-component 1D LUT in the Sony Pictures Imageworks
// .spi1d text format.
func WriteSPI1D(w io.Writer, fromMin, fromMax float64, data []float32) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Version 1")
	fmt.Fprintf(bw, "From %g %g\n", fromMin, fromMax)
	fmt.Fprintf(bw, "Length %d\n", len(data))
	fmt.Fprintln(bw, "Components 1")
	fmt.Fprintln(bw, "{")
	for _, v := range data {
		fmt.Fprintf(bw, " %.10e\n", v)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// WriteSPI1DFile bakes the transfer curve into a .spi1d file. The file name
// follows the ACES config convention, "<transfer>_to_linear.spi1d", and the
// chosen path is returned.
func WriteSPI1DFile(dir string, tf TransferFunction, resolution int, fromMin, fromMax float64) (string, error) {
	data, err := SampleCurve(tf, resolution, fromMin, fromMax)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, tf.String()+"_to_linear.spi1d")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteSPI1D(f, fromMin, fromMax, data); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
