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
	"io"
	"os"

	"github.com/chai2010/webp"
)

const (
	// DefaultQuality is the quality used for lossy WebP thumbnails.
	DefaultQuality = 75

	// WebPExt is the extension of all files written by WebPEncoder.
	WebPExt = ".webp"
)

// Encoder writes an image in one fixed format. Ext is the file extension
// (including the dot) of files written by the encoder.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	Ext() string
}

// WebPEncoder encodes images as lossy WebP.
type WebPEncoder struct {
	// Quality is between 0 and 100, higher is better.
	Quality float32
}

// NewWebPEncoder returns a lossy encoder with the given quality.
func NewWebPEncoder(quality float32) WebPEncoder {
	return WebPEncoder{Quality: quality}
}

// DefaultEncoder is the encoder used if nothing else is configured.
var DefaultEncoder Encoder = NewWebPEncoder(DefaultQuality)

// Encode encodes img lossy with the configured quality.
func (enc WebPEncoder) Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: enc.Quality})
}

// Ext returns ".webp".
func (enc WebPEncoder) Ext() string {
	return WebPExt
}

func saveImage(file string, img image.Image, enc Encoder) error {
	outFile, outErr := os.Create(file)
	if outErr != nil {
		return outErr
	}
	encErr := enc.Encode(outFile, img)
	closeErr := outFile.Close()
	if encErr == nil {
		encErr = closeErr
	}
	if encErr != nil {
		// don't leave a broken thumbnail behind
		os.Remove(file)
		return encErr
	}
	return nil
}
