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

// IntMax returns the maximum of a and all elements.
func IntMax(a int, elements ...int) int {
	res := a
	for _, val := range elements {
		if val > res {
			res = val
		}
	}
	return res
}

// KeepRatioHeight computes the new height given the original width and height
// s.t. the ration remains unchanged. The original values must be > 0.
func KeepRatioHeight(originalWidth, originalHeight, width int) int {
	ratio := float64(originalHeight) / float64(originalWidth)
	return int(ratio * float64(width))
}

// KeepRatioWidth computes the new width given the original width and height
// s.t. the ration remains unchanged. The original values must be > 0.
func KeepRatioWidth(originalWidth, originalHeight, height int) int {
	ratio := float64(originalWidth) / float64(originalHeight)
	return int(ratio * float64(height))
}
