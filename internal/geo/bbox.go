// Package geo derives snapped UTM output grids from scene footprints.
package geo

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/geosar-labs/stackrtc/internal/domain"
)

// BoundingBox is a geographic extent in WGS84 degrees.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Center returns the footprint centroid, used to pick the UTM zone and
// hemisphere for the whole scene.
func (b BoundingBox) Center() (lat, lon float64) {
	return (b.LatMin + b.LatMax) / 2, (b.LonMin + b.LonMax) / 2
}

func (b BoundingBox) valid() bool {
	return b.LatMin <= b.LatMax && b.LonMin <= b.LonMax &&
		b.LatMin >= -90 && b.LatMax <= 90 &&
		b.LonMin >= -180 && b.LonMax <= 180
}

// SceneBoundingBox scans the annotation XML files of an extracted scene
// directory and returns the min/max of all geolocation grid latitudes
// and longitudes.
func SceneBoundingBox(sceneDir string) (BoundingBox, error) {
	var xmls []string
	err := filepath.WalkDir(sceneDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".xml") {
			xmls = append(xmls, path)
		}
		return nil
	})
	if err != nil {
		return BoundingBox{}, fmt.Errorf("scan %s: %w", sceneDir, err)
	}
	if len(xmls) == 0 {
		return BoundingBox{}, fmt.Errorf("%w: no annotation files under %s", domain.ErrGeometry, sceneDir)
	}

	box := BoundingBox{LatMin: 91, LatMax: -91, LonMin: 181, LonMax: -181}
	found := false
	for _, path := range xmls {
		if err := accumulateGridPoints(path, &box, &found); err != nil {
			return BoundingBox{}, err
		}
	}
	if !found {
		return BoundingBox{}, fmt.Errorf("%w: no geolocation grid points under %s", domain.ErrGeometry, sceneDir)
	}
	return box, nil
}

// accumulateGridPoints folds every <latitude>/<longitude> element of one
// annotation file into the running extent.
func accumulateGridPoints(path string, box *BoundingBox, found *bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open annotation: %w", err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err != nil {
			break // EOF or malformed trailing content; keep what we have
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		isLat := se.Name.Local == "latitude"
		isLon := se.Name.Local == "longitude"
		if !isLat && !isLon {
			continue
		}
		var raw string
		if err := dec.DecodeElement(&raw, &se); err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		*found = true
		if isLat {
			if v < box.LatMin {
				box.LatMin = v
			}
			if v > box.LatMax {
				box.LatMax = v
			}
		} else {
			if v < box.LonMin {
				box.LonMin = v
			}
			if v > box.LonMax {
				box.LonMax = v
			}
		}
	}
	return nil
}
