package views

import (
	"bufio"
	"fmt"
	"html/template"
	"os"

	"location-mapper/utils"
)

// MapPoint is one marker on the rendered map.
type MapPoint struct {
	Lat   float64
	Lon   float64
	Popup string // HTML fragment shown when the marker is clicked
}

type mapDocument struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Radius    float64
	Color     string
	Opacity   float64
	Points    []MapPoint
}

// mapTemplate renders a self-contained Leaflet page. Markers are emitted in
// slice order, so the document preserves the dataset's final row order.
var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Location Data Map</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    maxZoom: 19,
    attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
{{- range .Points}}
L.circleMarker([{{.Lat}}, {{.Lon}}], {
    radius: {{$.Radius}},
    color: {{$.Color}},
    fill: true,
    fillColor: {{$.Color}},
    fillOpacity: {{$.Opacity}}
}).bindPopup({{.Popup}}).addTo(map);
{{- end}}
</script>
</body>
</html>
`))

// WriteMap renders one marker per point into a standalone interactive HTML
// document at path, centred on (centerLat, centerLon) at the configured
// zoom. Styling comes from MapConfig; popups carry pre-built HTML.
func WriteMap(path string, centerLat, centerLon float64, cfg utils.MapConfig, points []MapPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("map create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	doc := mapDocument{
		CenterLat: centerLat,
		CenterLon: centerLon,
		Zoom:      cfg.Zoom,
		Radius:    cfg.MarkerRadius,
		Color:     cfg.MarkerColor,
		Opacity:   cfg.FillOpacity,
		Points:    points,
	}
	if err := mapTemplate.Execute(bw, doc); err != nil {
		return fmt.Errorf("map render: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("map write %s: %w", path, err)
	}
	return nil
}
