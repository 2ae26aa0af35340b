// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaicprep

import (
	"image"
	// register the decoders, any file one of them understands is a valid source
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageResizer resizes an image to the given width and height.
// It does not care about the ratio of the original image, deciding how to
// crop is up to a ResizeStrategy such as FitResize.
type ImageResizer interface {
	Resize(width, height uint, img image.Image) image.Image
}

// NfntResizer uses the nfnt/resize package to resize an image.
type NfntResizer struct {
	// InterP is the interpolation function to use.
	InterP resize.InterpolationFunction
}

// NewNfntResizer returns a new resizer given the interpolation function.
func NewNfntResizer(interP resize.InterpolationFunction) NfntResizer {
	return NfntResizer{interP}
}

// Resize calls nfnt/resize methods.
func (resizer NfntResizer) Resize(width, height uint, img image.Image) image.Image {
	return resize.Resize(width, height, img, resizer.InterP)
}

// MaxInterPQuality is the highest quality accepted by GetInterP, everything
// above is treated as this value.
const MaxInterPQuality uint = 5

// GetInterP returns an interpolation function given a desired quality.
// The higher the quality the better the interpolation should be, but execution
// time is higher. Currently supported are values between 0 and 5, each
// selecting a different interpolation function. Values greater than 5 are
// treated as 5.
//
// This method assumes that the interpolation functions provided by nfnt/resize
// can be sorted according to their quality. This should be a reasonable
// assumption.
func GetInterP(quality uint) resize.InterpolationFunction {
	switch quality {
	case 0:
		return resize.NearestNeighbor
	case 1:
		return resize.Bilinear
	case 2:
		return resize.Bicubic
	case 3:
		return resize.MitchellNetravali
	case 4:
		return resize.Lanczos2
	default:
		return resize.Lanczos3
	}
}

// InterPString returns a human readable name of the interpolation function.
func InterPString(interP resize.InterpolationFunction) string {
	switch interP {
	case resize.NearestNeighbor:
		return "NearestNeighbor"
	case resize.Bilinear:
		return "Bilinear"
	case resize.Bicubic:
		return "Bicubic"
	case resize.MitchellNetravali:
		return "MitchellNetravali"
	case resize.Lanczos2:
		return "Lanczos2"
	case resize.Lanczos3:
		return "Lanczos3"
	default:
		return "Unknown"
	}
}

// DefaultInterPQuality selects bicubic interpolation.
const DefaultInterPQuality uint = 2

var (
	// DefaultResizer is the resizer that is used by default, if you're
	// looking for a resizer default argument this seems useful.
	DefaultResizer = NewNfntResizer(GetInterP(DefaultInterPQuality))
)
