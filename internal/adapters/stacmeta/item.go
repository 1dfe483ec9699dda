// Package stacmeta writes STAC Item sidecars describing the collected
// stack products, so the shared product directory can be indexed by
// STAC-aware catalogs.
package stacmeta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/planetlabs/go-stac"

	"github.com/geosar-labs/stackrtc/internal/domain"
	"github.com/geosar-labs/stackrtc/internal/geo"
)

const (
	stacVersion = "1.0.0"
	dateLayout  = "20060102T150405"
)

// WriteItem writes one STAC Item JSON for a scene's products into the
// product directory, with the scene footprint as geometry and one data
// asset per collected raster.
func WriteItem(dir string, s domain.Scene, box geo.BoundingBox, rasters []string) error {
	id := strings.TrimSuffix(filepath.Base(s.Dir), ".SAFE")

	item := &stac.Item{
		Version:    stacVersion,
		Id:         id,
		Properties: make(map[string]any),
		Assets:     make(map[string]*stac.Asset),
		Links:      make([]*stac.Link, 0),
	}

	item.Bbox = []float64{box.LonMin, box.LatMin, box.LonMax, box.LatMax}
	item.Geometry = map[string]any{
		"type": "Polygon",
		"coordinates": [][][]float64{{
			{box.LonMin, box.LatMin},
			{box.LonMax, box.LatMin},
			{box.LonMax, box.LatMax},
			{box.LonMin, box.LatMax},
			{box.LonMin, box.LatMin},
		}},
	}

	if t, err := time.Parse(dateLayout, s.Date); err == nil {
		item.Properties["datetime"] = t.UTC().Format(time.RFC3339)
	}

	var polarizations []string
	for _, raster := range rasters {
		name, err := domain.ParseProductName(raster)
		if err != nil {
			// Auxiliary rasters (dem, inc map) don't follow the
			// product naming; attach them without SAR properties.
			item.Assets[assetKey(raster)] = rasterAsset(raster, "Auxiliary Raster")
			continue
		}
		if item.Properties["platform"] == nil {
			item.Properties["platform"] = strings.ToLower(name.Platform)
			item.Properties["sar:instrument_mode"] = name.BeamMode
			item.Properties["sar:product_type"] = "RTC"
		}
		polarizations = append(polarizations, name.Polarization)
		item.Assets[name.Polarization] = rasterAsset(raster, name.Polarization+" Backscatter")
	}
	if len(polarizations) > 0 {
		item.Properties["sar:polarizations"] = polarizations
	}

	b, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stac item: %w", err)
	}
	path := filepath.Join(dir, id+".stac.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write stac item: %w", err)
	}
	return nil
}

func assetKey(raster string) string {
	base := filepath.Base(raster)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func rasterAsset(raster, title string) *stac.Asset {
	return &stac.Asset{
		Href:  filepath.Base(raster),
		Title: title,
		Type:  "image/tiff; application=geotiff",
		Roles: []string{"data"},
	}
}
