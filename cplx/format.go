// SPDX-License-Identifier: MIT

package cplx

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/rootfind/core"
)

// DefaultImaginaryLabel is the suffix written after the imaginary part.
const DefaultImaginaryLabel = "i"

// FormatOptions controls the text form of complex numbers.
type FormatOptions struct {
	// ImaginaryLabel is the imaginary-unit suffix ("i", "j", ...). Must not be empty.
	ImaginaryLabel string

	// Precision is passed to strconv.FormatFloat; -1 means shortest round-trip form.
	Precision int
}

// DefaultFormat returns {ImaginaryLabel: "i", Precision: -1}.
func DefaultFormat() FormatOptions {
	return FormatOptions{ImaginaryLabel: DefaultImaginaryLabel, Precision: -1}
}

func (o FormatOptions) validate(op string) error {
	if o.ImaginaryLabel == "" {
		return core.Errorf(op+": empty imaginary label", core.ErrInvalidArgument)
	}

	return nil
}

// Format renders z as "re + im i" / "re - im i", or just "re" when the
// imaginary part is zero.
func Format(z complex128, opts FormatOptions) (string, error) {
	if err := opts.validate("cplx.Format"); err != nil {
		return "", err
	}
	re, im := real(z), imag(z)
	s := strconv.FormatFloat(re, 'g', opts.Precision, 64)
	if im == 0 {
		return s, nil
	}
	sign := " + "
	if im < 0 {
		sign = " - "
		im = -im
	}

	return s + sign + strconv.FormatFloat(im, 'g', opts.Precision, 64) + opts.ImaginaryLabel, nil
}

// Parse reads the form produced by Format. A bare real ("2.5") and a bare
// imaginary ("3i", "-i") are accepted as well.
func Parse(s string, opts FormatOptions) (complex128, error) {
	const op = "cplx.Parse"
	if err := opts.validate(op); err != nil {
		return 0, err
	}
	src := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if src == "" {
		return 0, core.Errorf(op+": empty input", core.ErrInvalidArgument)
	}
	if !strings.HasSuffix(src, opts.ImaginaryLabel) {
		re, err := strconv.ParseFloat(src, 64)
		if err != nil {
			return 0, core.Errorf(op+": "+err.Error(), core.ErrInvalidArgument)
		}
		return complex(re, 0), nil
	}
	body := strings.TrimSuffix(src, opts.ImaginaryLabel)

	// split at the last sign that is not part of an exponent and not leading
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		if (body[i] == '+' || body[i] == '-') && body[i-1] != 'e' && body[i-1] != 'E' {
			split = i
			break
		}
	}
	reText, imText := "0", body
	if split > 0 {
		reText, imText = body[:split], body[split:]
	}
	switch imText {
	case "", "+":
		imText = "1"
	case "-":
		imText = "-1"
	}
	re, err := strconv.ParseFloat(reText, 64)
	if err != nil {
		return 0, core.Errorf(op+": "+err.Error(), core.ErrInvalidArgument)
	}
	im, err := strconv.ParseFloat(imText, 64)
	if err != nil {
		return 0, core.Errorf(op+": "+err.Error(), core.ErrInvalidArgument)
	}

	return complex(re, im), nil
}
