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
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSource is returned if the source directory does not exist or
	// is not a directory. Use errors.Cause to compare.
	ErrInvalidSource = errors.New("Source folder not found")
)

// SourceDir contains the regular files found directly in Root. Names are
// stored relative to Root in the order the operating system listed them,
// that order is not necessarily sorted.
type SourceDir struct {
	Root  string
	Names []string
}

// NewSourceDir returns an empty SourceDir.
func NewSourceDir(root string) *SourceDir {
	return &SourceDir{Root: root, Names: nil}
}

// NumFiles returns the number of files in the directory.
func (dir *SourceDir) NumFiles() int {
	return len(dir.Names)
}

// GetPath returns the path of the i-th file.
func (dir *SourceDir) GetPath(i int) string {
	return filepath.Join(dir.Root, dir.Names[i])
}

// LoadImage opens and decodes the i-th file. The file is closed before
// LoadImage returns.
func (dir *SourceDir) LoadImage(i int) (image.Image, error) {
	if i < 0 || i >= dir.NumFiles() {
		return nil, errors.Errorf("Invalid file index %d", i)
	}
	r, openErr := os.Open(dir.GetPath(i))
	if openErr != nil {
		return nil, openErr
	}
	defer r.Close()
	img, _, decodeErr := image.Decode(r)
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "cannot identify image file")
	}
	return img, nil
}

// ValidateSourceDir returns ErrInvalidSource (wrapped with the path) if root
// is not an existing directory.
func ValidateSourceDir(root string) error {
	info, statErr := os.Stat(root)
	if statErr != nil || !info.IsDir() {
		return errors.Wrapf(ErrInvalidSource, "%s", root)
	}
	return nil
}

// ReadSourceDir lists the regular files directly inside root. Symbolic links
// are followed, a link to a file counts as a file. Directories and all other
// entries are ignored, subdirectories are not visited.
func ReadSourceDir(root string) (*SourceDir, error) {
	if err := ValidateSourceDir(root); err != nil {
		return nil, err
	}
	f, openErr := os.Open(root)
	if openErr != nil {
		return nil, errors.Wrapf(openErr, "can't list %s", root)
	}
	defer f.Close()
	// not os.ReadDir: that one sorts by name
	entries, readErr := f.ReadDir(-1)
	if readErr != nil {
		return nil, errors.Wrapf(readErr, "can't list %s", root)
	}
	result := NewSourceDir(root)
	for _, entry := range entries {
		if isRegularFile(root, entry) {
			result.Names = append(result.Names, entry.Name())
		}
	}
	return result, nil
}

func isRegularFile(root string, entry os.DirEntry) bool {
	mode := entry.Type()
	switch {
	case mode.IsRegular():
		return true
	case mode&os.ModeSymlink != 0:
		info, err := os.Stat(filepath.Join(root, entry.Name()))
		return err == nil && info.Mode().IsRegular()
	default:
		return false
	}
}
