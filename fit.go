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

	"github.com/disintegration/imaging"
)

// ResizeStrategy is a function that scales an image (img) to an image of
// exactly the size defined by width and height.
//
// The difference between ResizeStrategy and ImageResizer is that we think of
// an ImageResizer as an "engine", for example a library, that performs the
// scaling of an image exactly to a specific width and height.
// A ResizeStrategy might first resize an image to some other size and then
// return a subimage. That is we think of a resizer as something that does the
// work and a ResizeStrategy as something that decides how to nicely scale an
// image s.t. it fits nicely.
type ResizeStrategy func(resizer ImageResizer, width, height uint, img image.Image) image.Image

// FitResize is a ResizeStrategy that never distorts the image: It scales the
// image uniformly s.t. it covers the whole target area and then cuts away
// what is left over on both sides of the longer dimension (center crop).
// The result is never letterboxed.
func FitResize(resizer ImageResizer, width, height uint, img image.Image) image.Image {
	bounds := img.Bounds()
	origWidth, origHeight := bounds.Dx(), bounds.Dy()
	if origWidth <= 0 || origHeight <= 0 || width == 0 || height == 0 {
		return imaging.New(int(width), int(height), image.Transparent)
	}
	scaledWidth, scaledHeight := coverSize(origWidth, origHeight, int(width), int(height))
	scaled := resizer.Resize(uint(scaledWidth), uint(scaledHeight), img)
	return imaging.CropCenter(scaled, int(width), int(height))
}

// coverSize computes the smallest size with the ratio of the original image
// that still covers width × height. The returned dimensions are never smaller
// than the requested ones.
func coverSize(origWidth, origHeight, width, height int) (int, int) {
	// compare origWidth / origHeight with width / height without floats
	if origWidth*height >= width*origHeight {
		// wider than the target: height is the limiting dimension
		return IntMax(KeepRatioWidth(origWidth, origHeight, height), width), height
	}
	return width, IntMax(KeepRatioHeight(origWidth, origHeight, width), height)
}
