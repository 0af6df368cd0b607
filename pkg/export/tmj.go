package export

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/tilemap"
)

// TMJ Format Types
// Based on Tiled Map Editor JSON specification (TMJ 1.10)
// Reference: https://doc.mapeditor.org/en/stable/reference/json-map-format/

// TMJMap represents the root TMJ map structure.
type TMJMap struct {
	Type             string        `json:"type"`
	Version          string        `json:"version"`
	TiledVersion     string        `json:"tiledversion"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	TileWidth        int           `json:"tilewidth"`
	TileHeight       int           `json:"tileheight"`
	Orientation      string        `json:"orientation"`
	RenderOrder      string        `json:"renderorder"`
	Infinite         bool          `json:"infinite"`
	NextLayerID      int           `json:"nextlayerid"`
	NextObjectID     int           `json:"nextobjectid"`
	Class            string        `json:"class,omitempty"`
	CompressionLevel int           `json:"compressionlevel"`
	Layers           []TMJLayer    `json:"layers"`
	Tilesets         []TMJTileset  `json:"tilesets"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJLayer represents a tile or object layer.
type TMJLayer struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Type        string        `json:"type"` // "tilelayer" or "objectgroup"
	Visible     bool          `json:"visible"`
	Opacity     float64       `json:"opacity"`
	X           int           `json:"x"`
	Y           int           `json:"y"`
	Width       int           `json:"width,omitempty"`
	Height      int           `json:"height,omitempty"`
	Class       string        `json:"class,omitempty"`
	Properties  []TMJProperty `json:"properties,omitempty"`
	Data        interface{}   `json:"data,omitempty"`        // []uint32 or base64 string
	Encoding    string        `json:"encoding,omitempty"`    // "csv" or "base64"
	Compression string        `json:"compression,omitempty"` // "" or "gzip"
	DrawOrder   string        `json:"draworder,omitempty"`
	Objects     []TMJObject   `json:"objects,omitempty"`
}

// TMJObject represents an entity marker (START/GOAL) placed on an object
// layer.
type TMJObject struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Visible bool    `json:"visible"`
}

// TMJTileset references a collection of tiles.
type TMJTileset struct {
	FirstGID   uint32 `json:"firstgid"`
	Name       string `json:"name,omitempty"`
	TileWidth  int    `json:"tilewidth,omitempty"`
	TileHeight int    `json:"tileheight,omitempty"`
	TileCount  int    `json:"tilecount,omitempty"`
	Columns    int    `json:"columns,omitempty"`
	Image      string `json:"image,omitempty"`
}

// TMJProperty represents a custom property.
type TMJProperty struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// TMJ GID Flags
const (
	FlippedHorizontallyFlag = 0x80000000
	FlippedVerticallyFlag   = 0x40000000
	FlippedDiagonallyFlag   = 0x20000000
	TileIDMask              = 0x1FFFFFFF
)

// NewTMJMap creates a new TMJ map with default settings sized to the
// SemanticGrid's fixed 32x32 footprint.
func NewTMJMap(tileWidth, tileHeight int) *TMJMap {
	return &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            grid.Width,
		Height:           grid.Height,
		TileWidth:        tileWidth,
		TileHeight:       tileHeight,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		NextLayerID:      1,
		NextObjectID:     1,
		CompressionLevel: -1,
		Layers:           []TMJLayer{},
		Tilesets:         []TMJTileset{},
	}
}

// AddTileLayer adds a tile layer to the map.
func (m *TMJMap) AddTileLayer(name string, data []uint32) *TMJLayer {
	layer := TMJLayer{
		ID:       m.NextLayerID,
		Name:     name,
		Type:     "tilelayer",
		Visible:  true,
		Opacity:  1.0,
		Width:    m.Width,
		Height:   m.Height,
		Data:     data,
		Encoding: "csv",
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObjectLayer adds an object layer to the map.
func (m *TMJMap) AddObjectLayer(name string) *TMJLayer {
	layer := TMJLayer{
		ID:        m.NextLayerID,
		Name:      name,
		Type:      "objectgroup",
		Visible:   true,
		Opacity:   1.0,
		DrawOrder: "topdown",
		Objects:   []TMJObject{},
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObject adds an object to an object layer.
func (l *TMJLayer) AddObject(obj TMJObject, m *TMJMap) {
	if l.Type != "objectgroup" {
		return
	}
	obj.ID = m.NextObjectID
	m.NextObjectID++
	l.Objects = append(l.Objects, obj)
}

// AddTileset adds a tileset reference to the map.
func (m *TMJMap) AddTileset(name, imagePath string, tileWidth, tileHeight, tileCount, columns int) *TMJTileset {
	firstGID := uint32(1)
	if len(m.Tilesets) > 0 {
		last := m.Tilesets[len(m.Tilesets)-1]
		firstGID = last.FirstGID + uint32(last.TileCount)
	}
	tileset := TMJTileset{
		FirstGID:   firstGID,
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		TileCount:  tileCount,
		Columns:    columns,
		Image:      imagePath,
	}
	m.Tilesets = append(m.Tilesets, tileset)
	return &m.Tilesets[len(m.Tilesets)-1]
}

// CompressLayerData compresses tile data with gzip and encodes as base64.
func (l *TMJLayer) CompressLayerData() error {
	if l.Type != "tilelayer" {
		return fmt.Errorf("cannot compress non-tile layer")
	}
	data, ok := l.Data.([]uint32)
	if !ok {
		return fmt.Errorf("layer data is not []uint32")
	}

	buf := new(bytes.Buffer)
	for _, gid := range data {
		buf.WriteByte(byte(gid))
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid >> 16))
		buf.WriteByte(byte(gid >> 24))
	}

	var compressed bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressed)
	if _, err := gzipWriter.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return err
	}

	l.Data = base64.StdEncoding.EncodeToString(compressed.Bytes())
	l.Encoding = "base64"
	l.Compression = "gzip"
	return nil
}

// CalculateGID converts a tileset-local tile ID to a global ID with flip
// flags.
func CalculateGID(tilesetFirstGID uint32, localTileID int, flipH, flipV, flipD bool) uint32 {
	gid := tilesetFirstGID + uint32(localTileID)
	if flipH {
		gid |= FlippedHorizontallyFlag
	}
	if flipV {
		gid |= FlippedVerticallyFlag
	}
	if flipD {
		gid |= FlippedDiagonallyFlag
	}
	return gid
}

// ParseGID extracts the tile ID and flip flags from a GID.
func ParseGID(gid uint32) (tileID uint32, flipH, flipV, flipD bool) {
	flipH = (gid & FlippedHorizontallyFlag) != 0
	flipV = (gid & FlippedVerticallyFlag) != 0
	flipD = (gid & FlippedDiagonallyFlag) != 0
	tileID = gid & TileIDMask
	return
}

// ExportTMJ converts a SemanticGrid, through tilemap.ToTilemap, into a TMJ
// map: one "terrain" tile layer plus an "entities" object layer carrying
// START/GOAL markers. Compression gzips and base64-encodes the tile data,
// matching Tiled's own "gzip" layer compression.
func ExportTMJ(g *grid.SemanticGrid, ids tilemap.TileIDs, tileWidth, tileHeight int, compress bool) (*TMJMap, error) {
	tiles := tilemap.ToTilemap(g, ids)

	tmjMap := NewTMJMap(tileWidth, tileHeight)
	tmjMap.Class = "level"
	tmjMap.AddTileset("level_tiles", "tilesets/level.png", tileWidth, tileHeight, 256, 16)

	data := make([]uint32, grid.Width*grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			data[y*grid.Width+x] = CalculateGID(1, tiles[y][x], false, false, false)
		}
	}
	terrain := tmjMap.AddTileLayer("terrain", data)
	if compress {
		if err := terrain.CompressLayerData(); err != nil {
			return nil, fmt.Errorf("compressing terrain layer: %w", err)
		}
	}

	entities := tmjMap.AddObjectLayer("entities")
	if pt, count := g.Find(grid.START); count == 1 {
		entities.AddObject(TMJObject{
			Name: "start", Type: "spawn",
			X: float64(pt.X * tileWidth), Y: float64(pt.Y * tileHeight),
			Width: float64(tileWidth), Height: float64(tileHeight),
			Visible: true,
		}, tmjMap)
	}
	if pt, count := g.Find(grid.GOAL); count == 1 {
		entities.AddObject(TMJObject{
			Name: "goal", Type: "exit",
			X: float64(pt.X * tileWidth), Y: float64(pt.Y * tileHeight),
			Width: float64(tileWidth), Height: float64(tileHeight),
			Visible: true,
		}, tmjMap)
	}

	return tmjMap, nil
}

// MarshalTMJ serializes a TMJ map to indented JSON.
func MarshalTMJ(tmjMap *TMJMap) ([]byte, error) {
	return json.MarshalIndent(tmjMap, "", "  ")
}

// SaveTMJToFile writes a TMJ map to path with 0644 permissions.
func SaveTMJToFile(tmjMap *TMJMap, path string) error {
	data, err := MarshalTMJ(tmjMap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EncodeTMJ writes a TMJ map to w with indentation.
func EncodeTMJ(tmjMap *TMJMap, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tmjMap)
}
