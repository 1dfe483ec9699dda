package stacmeta

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosar-labs/stackrtc/internal/domain"
	"github.com/geosar-labs/stackrtc/internal/geo"
)

func TestWriteItem(t *testing.T) {
	dir := t.TempDir()
	scene := domain.Scene{
		Name: "S1A_IW_GRDH_1SDV_20200101T170703_20200101T170730_033264_03DA9B_CAB2.zip",
		Dir:  "/work/S1A_IW_GRDH_1SDV_20200101T170703_20200101T170730_033264_03DA9B_CAB2.SAFE",
		Date: "20200101T170703",
	}
	box := geo.BoundingBox{LatMin: 63.05, LatMax: 63.98, LonMin: -147.95, LonMax: -146.01}
	rasters := []string{
		"/out/S1A_IW_RT30_20200101T170703_G_gpn_VV.tif",
		"/out/S1A_IW_RT30_20200101T170703_G_gpn_VH.tif",
		"/out/S1A_IW_RT30_20200101T170703_dem.tif",
	}

	require.NoError(t, WriteItem(dir, scene, box, rasters))

	path := filepath.Join(dir, "S1A_IW_GRDH_1SDV_20200101T170703_20200101T170730_033264_03DA9B_CAB2.stac.json")
	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var item map[string]any
	require.NoError(t, json.Unmarshal(b, &item))

	assert.Equal(t, "S1A_IW_GRDH_1SDV_20200101T170703_20200101T170730_033264_03DA9B_CAB2", item["id"])
	assert.Equal(t, "1.0.0", item["stac_version"])

	bbox, ok := item["bbox"].([]any)
	require.True(t, ok)
	require.Len(t, bbox, 4)
	assert.Equal(t, -147.95, bbox[0])
	assert.Equal(t, 63.05, bbox[1])

	props, ok := item["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2020-01-01T17:07:03Z", props["datetime"])
	assert.Equal(t, "s1a", props["platform"])
	assert.Equal(t, "IW", props["sar:instrument_mode"])
	assert.ElementsMatch(t, []any{"VV", "VH"}, props["sar:polarizations"])

	assets, ok := item["assets"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, assets, "VV")
	require.Contains(t, assets, "VH")
	require.Contains(t, assets, "S1A_IW_RT30_20200101T170703_dem")

	vv, ok := assets["VV"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "S1A_IW_RT30_20200101T170703_G_gpn_VV.tif", vv["href"])
	assert.Equal(t, "image/tiff; application=geotiff", vv["type"])

	geom, ok := item["geometry"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Polygon", geom["type"])
}

func TestWriteItemNoRecognizedRasters(t *testing.T) {
	dir := t.TempDir()
	scene := domain.Scene{
		Dir:  "/work/S1A_IW_GRDH_1SDV_20200113T170702_20200113T170729_033439_03E08F_1P9E.SAFE",
		Date: "20200113T170702",
	}
	box := geo.BoundingBox{LatMin: 1, LatMax: 2, LonMin: 3, LonMax: 4}

	require.NoError(t, WriteItem(dir, scene, box, []string{"/out/area_map.tif"}))

	b, err := os.ReadFile(filepath.Join(dir, "S1A_IW_GRDH_1SDV_20200113T170702_20200113T170729_033439_03E08F_1P9E.stac.json"))
	require.NoError(t, err)

	var item map[string]any
	require.NoError(t, json.Unmarshal(b, &item))

	props := item["properties"].(map[string]any)
	assert.NotContains(t, props, "sar:polarizations")

	assets := item["assets"].(map[string]any)
	require.Contains(t, assets, "area_map")
}
