package mapdata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// GAT format errors.
var (
	ErrInvalidGATMagic       = errors.New("invalid GAT magic: expected 'GRAT'")
	ErrUnsupportedGATVersion = errors.New("unsupported GAT version")
	ErrTruncatedGATData      = errors.New("truncated GAT data")
)

// GAT cell types as stored in the file.
const (
	gatWalkable      = 0
	gatBlocked       = 1
	gatWater         = 2
	gatWalkableWater = 3
	gatSnipeable     = 4
	gatBlockedSnipe  = 5
)

// gatHeaderSize is magic (4) + version (2) + width (4) + height (4).
const gatHeaderSize = 14

// gatCellSize is four float32 corner heights plus a uint32 type.
const gatCellSize = 20

// gatTerrain maps GAT cell types to terrain codes. Deep water is treated
// as heavy terrain and shallow water as light terrain; cliffs block.
var gatTerrain = map[uint32]int{
	gatWalkable:      CodeOpen,
	gatBlocked:       CodeBlocked,
	gatWater:         CodeHeavy,
	gatWalkableWater: CodeLight,
	gatSnipeable:     CodeBlocked,
	gatBlockedSnipe:  CodeBlocked,
}

// ParseGAT converts a binary ground altitude table into a terrain map.
// GAT rows are stored bottom row first, which matches Map's y axis.
// Corner heights are read and discarded.
func ParseGAT(data []byte) (*Map, error) {
	if len(data) < gatHeaderSize {
		return nil, ErrTruncatedGATData
	}
	if string(data[0:4]) != "GRAT" {
		return nil, ErrInvalidGATMagic
	}

	// Version is stored as [minor, major]; the cell layout is the same
	// for 1.x to 3.x
	major, minor := data[5], data[4]
	if major < 1 || major > 3 {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedGATVersion, major, minor)
	}

	width := binary.LittleEndian.Uint32(data[6:10])
	height := binary.LittleEndian.Uint32(data[10:14])
	if width == 0 || height == 0 || width > 4096 || height > 4096 {
		return nil, fmt.Errorf("invalid GAT dimensions: %dx%d", width, height)
	}

	cellCount := int(width * height)
	if len(data)-gatHeaderSize < cellCount*gatCellSize {
		return nil, fmt.Errorf("%w: need %d cells", ErrTruncatedGATData, cellCount)
	}

	m := &Map{
		Width:  int(width),
		Height: int(height),
		Cells:  make([][]int, height),
	}

	r := bytes.NewReader(data[gatHeaderSize:])
	var cell struct {
		Heights [4]float32
		Type    uint32
	}

	for y := 0; y < m.Height; y++ {
		row := make([]int, m.Width)
		for x := 0; x < m.Width; x++ {
			if err := binary.Read(r, binary.LittleEndian, &cell); err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d)", ErrTruncatedGATData, x, y)
			}
			code, ok := gatTerrain[cell.Type]
			if !ok {
				return nil, fmt.Errorf("%w: GAT type %d at (%d,%d)", ErrInvalidCell, cell.Type, x, y)
			}
			row[x] = code
		}
		m.Cells[y] = row
	}

	return m, nil
}
