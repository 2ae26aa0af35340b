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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultSquareSize is the default edge length of thumbnails in pixels.
	DefaultSquareSize uint = 35
)

var (
	// ErrInvalidSize is returned if a thumbnail size of zero is requested.
	ErrInvalidSize = errors.New("Square size must be a positive integer")

	// ErrEmptyImage is the reason for skipping images without pixels.
	ErrEmptyImage = errors.New("Image has zero width or height")
)

// SkipError describes why a single file was skipped. It never aborts a
// batch, Thumbnailer only logs it.
type SkipError struct {
	Name string
	Err  error
}

func (err *SkipError) Error() string {
	return fmt.Sprintf("Skipping %s: %v", err.Name, err.Err)
}

// Cause returns the underlying error, it makes SkipError work with
// errors.Cause.
func (err *SkipError) Cause() error {
	return err.Err
}

// Stats counts the files of a batch.
type Stats struct {
	Processed int
	Skipped   int
}

// Thumbnailer converts all images of a directory into square thumbnails.
// Files are handled one after another, a file is closed again before the
// next one is opened.
type Thumbnailer struct {
	// Size is the edge length of the thumbnails in pixels, must be > 0.
	Size uint

	// Resizer is the engine used to scale the images.
	Resizer ImageResizer

	// Strategy decides how Resizer is used to get a Size × Size image,
	// defaults to FitResize.
	Strategy ResizeStrategy

	// Encoder writes the thumbnails, it also decides on the extension of
	// the output files.
	Encoder Encoder

	// Log receives one line per processed or skipped file and a summary.
	Log log.FieldLogger
}

// NewThumbnailer returns a Thumbnailer with DefaultResizer, FitResize,
// DefaultEncoder and the standard logrus logger.
func NewThumbnailer(size uint) *Thumbnailer {
	return &Thumbnailer{
		Size:     size,
		Resizer:  DefaultResizer,
		Strategy: FitResize,
		Encoder:  DefaultEncoder,
		Log:      log.StandardLogger(),
	}
}

// Process runs a Thumbnailer with default settings, see Thumbnailer.Process.
func Process(sourceDir string, squareSize uint, outputDir string) (Stats, error) {
	return NewThumbnailer(squareSize).Process(sourceDir, outputDir)
}

// OutputName returns the name of the thumbnail for the source file name:
// the extension is replaced by the one of the encoder.
func (t *Thumbnailer) OutputName(name string) string {
	return fileStem(name) + t.Encoder.Ext()
}

// fileStem strips the extension from name. Leading dots don't start an
// extension, so ".hidden" is returned unchanged.
func fileStem(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.Trim(stem, ".") == "" {
		return name
	}
	return stem
}

// Process converts each regular file directly inside sourceDir and writes
// the result to outputDir, which is created if it does not exist.
//
// An error is returned only if the batch can't be started: sourceDir is not
// a directory (ErrInvalidSource), Size is zero (ErrInvalidSize) or outputDir
// can't be created. In these cases no file was written. Problems with single
// files are logged and counted in Stats.Skipped.
func (t *Thumbnailer) Process(sourceDir, outputDir string) (Stats, error) {
	var stats Stats
	if t.Size == 0 {
		return stats, ErrInvalidSize
	}
	if err := ValidateSourceDir(sourceDir); err != nil {
		return stats, err
	}
	if mkErr := os.MkdirAll(outputDir, 0755); mkErr != nil {
		return stats, errors.Wrapf(mkErr, "can't create output folder %s", outputDir)
	}
	dir, readErr := ReadSourceDir(sourceDir)
	if readErr != nil {
		return stats, readErr
	}
	t.Log.WithFields(log.Fields{
		"files":  dir.NumFiles(),
		"size":   t.Size,
		"source": sourceDir,
	}).Debug("Starting batch")
	for i := 0; i < dir.NumFiles(); i++ {
		name := dir.Names[i]
		outPath, skipErr := t.processFile(dir, i, outputDir)
		if skipErr != nil {
			stats.Skipped++
			t.Log.WithFields(log.Fields{
				"file":       name,
				log.ErrorKey: skipErr.Err,
			}).Warn("Skipping")
			continue
		}
		stats.Processed++
		t.Log.WithFields(log.Fields{
			"file":   name,
			"output": outPath,
		}).Info("Processed")
	}
	t.Log.WithFields(log.Fields{
		"output":    outputDir,
		"processed": stats.Processed,
		"skipped":   stats.Skipped,
	}).Info("Done")
	return stats, nil
}

// processFile converts the i-th file of dir. All errors (and panics of the
// codecs) are returned as SkipError.
func (t *Thumbnailer) processFile(dir *SourceDir, i int, outputDir string) (outPath string, err *SkipError) {
	name := dir.Names[i]
	defer func() {
		if r := recover(); r != nil {
			err = &SkipError{Name: name, Err: fmt.Errorf("%v", r)}
		}
	}()
	img, loadErr := dir.LoadImage(i)
	if loadErr != nil {
		return "", &SkipError{Name: name, Err: loadErr}
	}
	if img.Bounds().Empty() {
		return "", &SkipError{Name: name, Err: ErrEmptyImage}
	}
	thumb := t.Strategy(t.Resizer, t.Size, t.Size, img)
	outPath = filepath.Join(outputDir, t.OutputName(name))
	if saveErr := saveImage(outPath, thumb, t.Encoder); saveErr != nil {
		return "", &SkipError{Name: name, Err: saveErr}
	}
	return outPath, nil
}
