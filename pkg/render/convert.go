package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	errs "github.com/matzehuels/isobench/pkg/errors"
)

// Format is an output format of the renderers.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// DefaultScale is the PNG zoom factor used when none is given.
const DefaultScale = 2.0

const rsvgConvert = "rsvg-convert"

var formats = []Format{FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// Formats returns every supported output format.
func Formats() []Format { return slices.Clone(formats) }

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !slices.Contains(formats, f) {
		return "", errs.New(errs.ErrCodeInvalidInput, "unknown format %q (valid: dot, svg, pdf, png)", s)
	}
	return f, nil
}

// NeedsRSVG reports whether producing f shells out to rsvg-convert.
func (f Format) NeedsRSVG() bool { return f == FormatPDF || f == FormatPNG }

// ToPDF converts an SVG document to PDF with rsvg-convert.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convertSVG(ctx, svg, FormatPDF)
}

// ToPNG converts an SVG document to PNG with rsvg-convert, zoomed by scale.
// A scale of zero or less means DefaultScale.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	return convertSVG(ctx, svg, FormatPNG, "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convertSVG(ctx context.Context, svg []byte, to Format, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(rsvgConvert)
	if err != nil {
		return nil, errs.New(errs.ErrCodeUnsupported,
			"%s output needs %s from librsvg (brew install librsvg, apt install librsvg2-bin)", to, rsvgConvert)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, append([]string{"--format", string(to)}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w: %s", rsvgConvert, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
