// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log"

	"github.com/GermanBionicSystems/hyt-devices/hyt"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

func newPNGCmd(o *options) *cobra.Command {
	var (
		path          string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Render one measurement to a PNG card",
		Long: `Take one measurement and draw it as a black and white card, sized by
default for a 250x122 e-paper panel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 64 || height < 32 {
				return fmt.Errorf("card too small: %dx%d", width, height)
			}
			d, closeBus, err := openDevice(o)
			if err != nil {
				return err
			}
			defer closeBus()
			m, err := d.Measure()
			if err != nil {
				return err
			}
			img, err := renderCard(m, width, height)
			if err != nil {
				return err
			}
			if err := gg.SavePNG(path, img); err != nil {
				return err
			}
			log.Printf("%s: wrote %s to %s", d, m, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "out", "o", "hyt.png", "output file")
	cmd.Flags().IntVar(&width, "width", 250, "card width in pixels")
	cmd.Flags().IntVar(&height, "height", 122, "card height in pixels")
	return cmd
}

// renderCard draws temperature, humidity and a humidity bar.
func renderCard(m hyt.Measurement, w, h int) (image.Image, error) {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	hum, err := m.HumidityScaled(10)
	if err != nil {
		return nil, err
	}
	temp, err := m.TemperatureScaled(10)
	if err != nil {
		return nil, err
	}

	fw, fh := float64(w), float64(h)
	padding := 8.0
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.DrawRoundedRectangle(padding, padding, fw-2*padding, fh-2*padding, 10)
	dc.Stroke()

	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: fh / 6}))
	dc.DrawStringAnchored(formatScaled(temp, 1)+" °C", fw/2, fh*0.3, 0.5, 0.5)
	dc.DrawStringAnchored(formatScaled(hum, 1)+" %rH", fw/2, fh*0.55, 0.5, 0.5)
	if m.IsStale() {
		dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: fh / 12}))
		dc.DrawStringAnchored("stale", fw-3*padding, 3*padding, 1, 0.5)
	}

	barX, barY := 3*padding, fh*0.72
	barW, barH := fw-6*padding, fh*0.1
	dc.DrawRectangle(barX, barY, barW, barH)
	dc.Stroke()
	dc.DrawRectangle(barX, barY, barW*float64(hum)/1000, barH)
	dc.Fill()
	return dc.Image(), nil
}
