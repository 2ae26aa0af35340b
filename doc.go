// Package mosaicprep prepares tile material for photomosaics: it converts
// every image of a folder into a square thumbnail of fixed size, encoded as
// lossy WebP.
//
// Thumbnails are created with a center-crop-to-fill policy, the image is
// scaled until its shorter side matches the thumbnail size and whatever
// overlaps on the longer side is cut away evenly. Files that can't be decoded
// are skipped without stopping the batch.
//
// It ships with an executable program, see cmd/mosaicprep.
package mosaicprep
