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
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	// SourceImagesDir is the directory name that marks the project layout
	// <project>/source_images/... If a source path contains this segment
	// the default output directory is placed in
	// <project>/processed_source_images instead of next to the source.
	SourceImagesDir = "source_images"

	// ProcessedImagesDir is the directory in the project root that receives
	// the processed versions of everything below SourceImagesDir.
	ProcessedImagesDir = "processed_source_images"

	// ProcessedSuffix is appended to the name of the default output directory.
	ProcessedSuffix = "_processed"
)

// ResolvePath returns the absolute path given some other path.
// The home directory can be used like on Unix: ~/Pictures is the Pictures
// directory in the home directory of the user. Relative paths are joined
// with the current working directory.
func ResolvePath(path string) (string, error) {
	res, pathErr := homedir.Expand(path)
	if pathErr != nil {
		return "", pathErr
	}
	return filepath.Abs(res)
}

// DefaultOutputPath computes the output directory used when none is given.
//
// If the absolute source path contains a segment equal to SourceImagesDir
// (the first one if there are more) the result is
// <project_root>/processed_source_images/<remainder>_processed where
// project_root is everything before that segment and remainder everything
// after it. For example /a/b/source_images/c/d becomes
// /a/b/processed_source_images/c/d_processed.
//
// Otherwise the result is a sibling of the source directory:
// /x/y/myfolder becomes /x/y/myfolder_processed.
//
// No file system access happens here.
func DefaultOutputPath(source string) (string, error) {
	abs, absErr := filepath.Abs(source)
	if absErr != nil {
		return "", absErr
	}
	sep := string(filepath.Separator)
	parts := strings.Split(abs, sep)
	for i, part := range parts {
		if part != SourceImagesDir {
			continue
		}
		projectRoot := strings.Join(parts[:i], sep)
		if projectRoot == "" || projectRoot == filepath.VolumeName(abs) {
			// sentinel directly below the file system root
			projectRoot += sep
		}
		remainder := strings.Join(parts[i+1:], sep)
		return filepath.Join(projectRoot, ProcessedImagesDir, remainder+ProcessedSuffix), nil
	}
	parent := filepath.Dir(abs)
	baseName := filepath.Base(abs)
	return filepath.Join(parent, baseName+ProcessedSuffix), nil
}
