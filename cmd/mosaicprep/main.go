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

// Command mosaicprep converts a folder of images into square WebP thumbnails
// that can be used as tiles for photomosaics.
//
//	mosaicprep <input_folder> [output_folder] [--square-size 35]
//
// If no output folder is given it is derived from the input folder, see
// mosaicprep.DefaultOutputPath.
package main

import (
	"fmt"

	"github.com/FabianWe/mosaicprep"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	appName        = "mosaicprep"
	appDescription = "Resize images in a folder to square thumbnails for photomosaics."
)

// options are the values of the command line flags.
type options struct {
	squareSize int
	interp     uint
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   appName + " <input_folder> [output_folder]",
		Short: appDescription,
		Long: appDescription + `

The output folder is optional. If omitted and the input folder lies below a
"source_images" folder the thumbnails go to
<project>/processed_source_images/<rest>_processed, otherwise to
<input_folder>_processed next to the input folder.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts, args)
		},
	}
	cmd.Flags().IntVar(&opts.squareSize, "square-size", int(mosaicprep.DefaultSquareSize),
		"Size (in pixels) for both width and height")
	cmd.Flags().UintVar(&opts.interp, "interp", mosaicprep.DefaultInterPQuality,
		fmt.Sprintf("Interpolation quality between 0 (nearest neighbor) and %d (Lanczos3)", mosaicprep.MaxInterPQuality))
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug output")
	return cmd
}

func run(opts *options, args []string) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
	if opts.squareSize <= 0 {
		return errors.Errorf("Invalid value for square-size (must be positive int): %d", opts.squareSize)
	}
	if opts.interp > mosaicprep.MaxInterPQuality {
		return errors.Errorf("Invalid value for interp (must be between 0 and %d): %d",
			mosaicprep.MaxInterPQuality, opts.interp)
	}
	input, inputErr := mosaicprep.ResolvePath(args[0])
	if inputErr != nil {
		return inputErr
	}
	var output string
	var outputErr error
	if len(args) == 2 && args[1] != "" {
		output, outputErr = mosaicprep.ResolvePath(args[1])
	} else {
		output, outputErr = mosaicprep.DefaultOutputPath(input)
	}
	if outputErr != nil {
		return outputErr
	}

	interP := mosaicprep.GetInterP(opts.interp)
	log.WithFields(log.Fields{
		"input":  input,
		"output": output,
		"interp": mosaicprep.InterPString(interP),
	}).Debug("Resolved paths")

	thumbnailer := mosaicprep.NewThumbnailer(uint(opts.squareSize))
	thumbnailer.Resizer = mosaicprep.NewNfntResizer(interP)
	_, err := thumbnailer.Process(input, output)
	return err
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		log.WithFields(log.Fields{
			"app.name":   appName,
			log.ErrorKey: err,
		}).Fatal("application exited with an error")
	}
}
