package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into a point set and a triangle list. This
// is not a full (or even correct) svg parser. Every <circle> is a point, in
// document order, and every <polygon> is a triangle whose vertices are matched
// to circles by exact coordinates. If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (PointSet, []Triangle) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points PointSet
	indexOf := make(map[Point]int)
	for _, circleEl := range rootEl.FindAll("circle") {
		point := Point{
			parseFloat(circleEl.Attributes["cx"]),
			parseFloat(circleEl.Attributes["cy"]),
		}
		if _, ok := indexOf[point]; ok {
			log.Fatalf("Duplicate point %s in fixture %q", point, name)
		}
		indexOf[point] = len(points)
		points = append(points, point)
	}

	var triangles []Triangle
	for _, polygonEl := range rootEl.FindAll("polygon") {
		pointStrings := strings.Fields(polygonEl.Attributes["points"])
		if len(pointStrings) != 3 {
			log.Fatalf("Polygon %q in fixture %q is not a triangle", polygonEl.Attributes["points"], name)
		}

		var triangle Triangle
		for i, pointString := range pointStrings {
			coords := strings.Split(pointString, ",")
			if len(coords) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			point := Point{parseFloat(coords[0]), parseFloat(coords[1])}
			index, ok := indexOf[point]
			if !ok {
				log.Fatalf("Triangle vertex %s has no matching circle in fixture %q", point, name)
			}
			triangle[i] = index
		}
		triangles = append(triangles, triangle)
	}
	return points, triangles
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return f
}
