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
	"os"
	"path/filepath"
	"runtime"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses unix paths")
	}
	tests := []struct {
		source   string
		expected string
	}{
		{"/a/b/source_images/c/d", "/a/b/processed_source_images/c/d_processed"},
		{"/a/b/source_images/c", "/a/b/processed_source_images/c_processed"},
		{"/a/b/source_images/c/d/", "/a/b/processed_source_images/c/d_processed"},
		{"/x/y/myfolder", "/x/y/myfolder_processed"},
		{"/x/y/myfolder/", "/x/y/myfolder_processed"},
		{"/x/y/../z", "/x/z_processed"},
		// only exact segment matches count
		{"/x/my_source_images/c", "/x/my_source_images/c_processed"},
		{"/x/source_images2/c", "/x/source_images2/c_processed"},
		// first occurrence wins
		{"/a/source_images/b/source_images/c", "/a/processed_source_images/b/source_images/c_processed"},
		{"/source_images/c", "/processed_source_images/c_processed"},
		{"/a/source_images", "/a/processed_source_images/_processed"},
		{"/myfolder", "/myfolder_processed"},
		{"/", "/_processed"},
	}
	for _, tc := range tests {
		got, err := DefaultOutputPath(tc.source)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got, "source %s", tc.source)
	}
}

func TestDefaultOutputPathRelative(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	got, err := DefaultOutputPath("images")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "images_processed"), got)
}

func TestResolvePath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolvePath("some/dir")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "some", "dir"), got)

	home, homeErr := homedir.Dir()
	if homeErr != nil {
		t.Skip("no home directory:", homeErr)
	}
	got, err = ResolvePath(filepath.Join("~", "Pictures"))
	require.NoError(t, err)
	expected, err := filepath.Abs(filepath.Join(home, "Pictures"))
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
