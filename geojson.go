package gridmerge

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// orbPoint drops the Z coordinate, GeoJSON geometries are planar here.
func orbPoint(p Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

// LineString returns the segment as a planar line string.
func (l Line) LineString() orb.LineString {
	return orb.LineString{orbPoint(l.Start), orbPoint(l.End)}
}

// LineString returns the path as a planar line string of three coordinates.
func (p MergedPath) LineString() orb.LineString {
	ls := orb.LineString{}
	for _, c := range p.Coords() {
		ls = append(ls, orbPoint(c))
	}
	return ls
}

// GeoJSON returns the path as a GeoJSON feature with the given properties.
func (p MergedPath) GeoJSON(props map[string]any) *geojson.Feature {
	f := geojson.NewFeature(p.LineString())
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}

// FeatureCollection returns the preview as GeoJSON. Features have a "kind" property of "grid", "merged" or "column".
func (p *Preview) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, l := range p.Grids {
		f := geojson.NewFeature(l.LineString())
		f.Properties["kind"] = "grid"
		f.Properties["index"] = i
		fc.Append(f)
	}
	if p.Path != nil {
		fc.Append(p.Path.GeoJSON(map[string]any{"kind": "merged"}))
	}
	if p.Column != nil {
		f := geojson.NewFeature(orbPoint(*p.Column))
		f.Properties["kind"] = "column"
		f.Properties["z"] = p.Column.Z
		fc.Append(f)
	}
	return fc
}
