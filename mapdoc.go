package sidescroll

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// CMF layout. All integers are little-endian.
const (
	// Magic is the CMF signature, "CMF\x00" read as a little-endian uint32.
	Magic uint32 = 0x00464D43

	offChecksum   = 0x04
	offWidth      = 0x08
	offHeight     = 0x0C
	offBackground = 0x10
	offTileset    = 0x20
	headerSize    = 0x30
)

// MapDocument is an in-memory CMF map: a grid of single-byte tile indices
// plus the names of the tileset and background textures it is drawn with.
// The zero value is an empty map.
//
// The stored checksum is whatever was last loaded, saved or computed with
// UpdateChecksum. Mutations do not refresh it.
type MapDocument struct {
	checksum   uint32
	width      int
	height     int
	background ResourceName
	tileset    ResourceName
	tiles      [][]byte
}

// NewMapDocument returns a map of the given size with every tile set to 0.
func NewMapDocument(width, height int) (*MapDocument, error) {
	m := &MapDocument{}
	if err := m.SetWidth(width); err != nil {
		return nil, err
	}
	if err := m.SetHeight(height); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadMap loads Cmfs/<name>.cmf from the store.
func LoadMap(store *Store, name string, verify bool) (*MapDocument, error) {
	f, err := store.Open(KindMap, name)
	if err != nil {
		return nil, unable(ErrIO, fmt.Sprintf("load map %q", name), err)
	}
	defer f.Close()
	m := &MapDocument{}
	if err := m.Load(f, verify); err != nil {
		return nil, fmt.Errorf("sidescroll: map %q: %w", name, err)
	}
	return m, nil
}

// LoadMapFile loads a CMF file from a filesystem path.
func LoadMapFile(path string, verify bool) (*MapDocument, error) {
	m := &MapDocument{}
	if err := m.LoadFile(path, verify); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile replaces the document with the CMF file at path.
func (m *MapDocument) LoadFile(path string, verify bool) error {
	f, err := os.Open(path)
	if err != nil {
		return unable(ErrIO, "open map "+path, err)
	}
	defer f.Close()
	return m.Load(f, verify)
}

// Load replaces the document with the CMF data read from r. When verify is
// set the stored checksum must match the payload. On failure the document
// is left untouched.
func (m *MapDocument) Load(r io.Reader, verify bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return unable(ErrIO, "read map", err)
	}
	return m.decode(data, verify)
}

// UnmarshalBinary decodes a CMF image, verifying its checksum.
func (m *MapDocument) UnmarshalBinary(data []byte) error {
	return m.decode(data, true)
}

func (m *MapDocument) decode(data []byte, verify bool) error {
	if len(data) < 4 || binary.LittleEndian.Uint32(data) != Magic {
		return unable(ErrFormat, "decode map", errors.New("missing CMF signature"))
	}
	if len(data) < headerSize {
		return unable(ErrFormat, "decode map", fmt.Errorf("header truncated at %d bytes", len(data)))
	}

	stored := binary.LittleEndian.Uint32(data[offChecksum:])
	if verify {
		if sum := Checksum(data[checksumOffset:]); sum != stored {
			return unable(ErrIntegrity, "decode map",
				fmt.Errorf("stored %#08x, computed %#08x", stored, sum))
		}
	}

	w := int32(binary.LittleEndian.Uint32(data[offWidth:]))
	h := int32(binary.LittleEndian.Uint32(data[offHeight:]))
	if w < 0 || h < 0 {
		return unable(ErrFormat, "decode map", fmt.Errorf("negative size %dx%d", w, h))
	}
	n := int64(w) * int64(h)
	if n > int64(len(data)-headerSize) {
		return unable(ErrFormat, "decode map",
			fmt.Errorf("%dx%d tiles but only %d bytes", w, h, len(data)-headerSize))
	}

	var bg, ts [NameSize]byte
	copy(bg[:], data[offBackground:offBackground+NameSize])
	copy(ts[:], data[offTileset:offTileset+NameSize])

	tiles := make([][]byte, h)
	p := headerSize
	for row := range tiles {
		tiles[row] = make([]byte, w)
		p += copy(tiles[row], data[p:p+int(w)])
	}

	*m = MapDocument{
		checksum:   stored,
		width:      int(w),
		height:     int(h),
		background: resourceNameFromField(bg),
		tileset:    resourceNameFromField(ts),
		tiles:      tiles,
	}
	return nil
}

// MarshalBinary encodes the document as a CMF image with a freshly computed
// checksum. The document's stored checksum is not changed.
func (m *MapDocument) MarshalBinary() ([]byte, error) {
	if int64(m.width) > int64(^uint32(0)>>1) || int64(m.height) > int64(^uint32(0)>>1) {
		return nil, unable(ErrRange, "encode map", fmt.Errorf("size %dx%d", m.width, m.height))
	}
	buf := make([]byte, headerSize+m.width*m.height)
	binary.LittleEndian.PutUint32(buf, Magic)
	binary.LittleEndian.PutUint32(buf[offWidth:], uint32(int32(m.width)))
	binary.LittleEndian.PutUint32(buf[offHeight:], uint32(int32(m.height)))
	bg, ts := m.background.field(), m.tileset.field()
	copy(buf[offBackground:], bg[:])
	copy(buf[offTileset:], ts[:])
	p := headerSize
	for _, row := range m.tiles {
		p += copy(buf[p:], row)
	}
	binary.LittleEndian.PutUint32(buf[offChecksum:], Checksum(buf[checksumOffset:]))
	return buf, nil
}

// Save writes the document to path. Unless overwrite is set, an existing
// file makes Save fail with ErrAlreadyExists. The stored checksum is
// updated to the value written.
func (m *MapDocument) Save(path string, overwrite bool) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return unable(ErrAlreadyExists, "save map "+path, nil)
		}
		return unable(ErrIO, "save map "+path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return unable(ErrIO, "save map "+path, err)
	}
	if err := f.Close(); err != nil {
		return unable(ErrIO, "save map "+path, err)
	}
	m.checksum = binary.LittleEndian.Uint32(data[offChecksum:])
	return nil
}

// Width returns the number of tile columns.
func (m *MapDocument) Width() int { return m.width }

// Height returns the number of tile rows.
func (m *MapDocument) Height() int { return m.height }

// BackgroundName returns the background texture name.
func (m *MapDocument) BackgroundName() ResourceName { return m.background }

// TilesetName returns the tileset texture name.
func (m *MapDocument) TilesetName() ResourceName { return m.tileset }

// Checksum returns the stored checksum.
func (m *MapDocument) Checksum() uint32 { return m.checksum }

// ComputeChecksum returns the checksum of the document's current contents.
func (m *MapDocument) ComputeChecksum() uint32 {
	data, err := m.MarshalBinary()
	if err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(data[offChecksum:])
}

// UpdateChecksum stores the checksum of the current contents.
func (m *MapDocument) UpdateChecksum() {
	m.checksum = m.ComputeChecksum()
}

// SetBackgroundName sets the background texture name.
func (m *MapDocument) SetBackgroundName(name string) error {
	rn, err := NewResourceName(name)
	if err != nil {
		return err
	}
	m.background = rn
	return nil
}

// SetTilesetName sets the tileset texture name.
func (m *MapDocument) SetTilesetName(name string) error {
	rn, err := NewResourceName(name)
	if err != nil {
		return err
	}
	m.tileset = rn
	return nil
}

// Tile returns the tile index at (row, col).
func (m *MapDocument) Tile(row, col int) (byte, error) {
	if !m.inBounds(col, row) {
		return 0, fmt.Errorf("sidescroll: tile (row %d, col %d) outside %dx%d map: %w",
			row, col, m.width, m.height, ErrRange)
	}
	return m.tiles[row][col], nil
}

// SetTile writes value at column x, row y.
func (m *MapDocument) SetTile(x, y int, value byte) error {
	if !m.inBounds(x, y) {
		return fmt.Errorf("sidescroll: tile (%d, %d) outside %dx%d map: %w",
			x, y, m.width, m.height, ErrRange)
	}
	m.tiles[y][x] = value
	return nil
}

// Fill sets every tile to value.
func (m *MapDocument) Fill(value byte) {
	for _, row := range m.tiles {
		for i := range row {
			row[i] = value
		}
	}
}

// SetWidth resizes every row to w columns. New cells are 0.
func (m *MapDocument) SetWidth(w int) error {
	if w < 0 {
		return fmt.Errorf("sidescroll: width %d: %w", w, ErrRange)
	}
	for i, row := range m.tiles {
		if w <= len(row) {
			m.tiles[i] = row[:w:w]
		} else {
			m.tiles[i] = append(row, make([]byte, w-len(row))...)
		}
	}
	m.width = w
	return nil
}

// SetHeight resizes the grid to h rows. New rows are all 0.
func (m *MapDocument) SetHeight(h int) error {
	if h < 0 {
		return fmt.Errorf("sidescroll: height %d: %w", h, ErrRange)
	}
	if h <= len(m.tiles) {
		m.tiles = m.tiles[:h:h]
	} else {
		for len(m.tiles) < h {
			m.tiles = append(m.tiles, make([]byte, m.width))
		}
	}
	m.height = h
	return nil
}

// PixelSize returns the map size in logical pixels.
func (m *MapDocument) PixelSize() (w, h int) {
	return m.width * TileSize, m.height * TileSize
}

func (m *MapDocument) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}
