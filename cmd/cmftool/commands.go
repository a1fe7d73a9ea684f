package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/sidescroll"
)

// Globals is bound to every command's Run.
type Globals struct {
	Out io.Writer
}

type CLI struct {
	New    NewCmd    `cmd:"" help:"Create an empty map."`
	Info   InfoCmd   `cmd:"" help:"Print a map's header."`
	Verify VerifyCmd `cmd:"" help:"Check the stored checksum of one or more maps."`
	Set    SetCmd    `cmd:"" help:"Set one tile."`
	Fill   FillCmd   `cmd:"" help:"Set every tile to one value."`
	Resize ResizeCmd `cmd:"" help:"Change a map's size, keeping the overlapping tiles."`
	Rename RenameCmd `cmd:"" help:"Change the background or tileset name."`
}

type NewCmd struct {
	File       string `arg:"" help:"Map file to create."`
	Width      int    `help:"Columns." default:"20"`
	Height     int    `help:"Rows." default:"15"`
	Background string `help:"Background texture name." short:"b"`
	Tileset    string `help:"Tileset texture name." short:"t"`
	Force      bool   `help:"Overwrite an existing file." short:"f"`
}

func (c *NewCmd) Run(g *Globals) error {
	m, err := sidescroll.NewMapDocument(c.Width, c.Height)
	if err != nil {
		return err
	}
	if err := m.SetBackgroundName(c.Background); err != nil {
		return err
	}
	if err := m.SetTilesetName(c.Tileset); err != nil {
		return err
	}
	if err := m.Save(c.File, c.Force); err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "created %s (%dx%d, checksum %08x)\n", c.File, m.Width(), m.Height(), m.Checksum())
	return nil
}

// checksumOffset is where the checksummed part of a CMF file starts.
const checksumOffset = 8

type InfoCmd struct {
	File  string `arg:"" help:"Map file." type:"existingfile"`
	Tiles bool   `help:"Also print the tile grid."`
}

func (c *InfoCmd) Run(g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("cmftool: %w: %w", sidescroll.ErrIO, err)
	}
	m := &sidescroll.MapDocument{}
	if err := m.Load(bytes.NewReader(data), false); err != nil {
		return err
	}
	// Same bytes load-time verification covers, trailing data included.
	status := "ok"
	if computed := sidescroll.Checksum(data[checksumOffset:]); computed != m.Checksum() {
		status = fmt.Sprintf("mismatch, computed %08x", computed)
	}
	w, h := m.PixelSize()
	fmt.Fprintf(g.Out, "file:       %s\n", c.File)
	fmt.Fprintf(g.Out, "size:       %dx%d tiles (%dx%d px)\n", m.Width(), m.Height(), w, h)
	fmt.Fprintf(g.Out, "background: %s\n", m.BackgroundName())
	fmt.Fprintf(g.Out, "tileset:    %s\n", m.TilesetName())
	fmt.Fprintf(g.Out, "checksum:   %08x (%s)\n", m.Checksum(), status)

	if c.Tiles {
		for row := 0; row < m.Height(); row++ {
			for col := 0; col < m.Width(); col++ {
				v, _ := m.Tile(row, col)
				if col > 0 {
					fmt.Fprint(g.Out, " ")
				}
				fmt.Fprintf(g.Out, "%02x", v)
			}
			fmt.Fprintln(g.Out)
		}
	}
	return nil
}

type VerifyCmd struct {
	Files []string `arg:"" help:"Map files."`
}

var errVerifyFailed = errors.New("cmftool: verification failed")

func (c *VerifyCmd) Run(g *Globals) error {
	failed := 0
	for _, path := range c.Files {
		if _, err := sidescroll.LoadMapFile(path, true); err != nil {
			failed++
			fmt.Fprintf(g.Out, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(g.Out, "ok   %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errVerifyFailed, failed, len(c.Files))
	}
	return nil
}

// editMap loads path without checksum verification, applies edit and saves
// the result over the original with a fresh checksum.
func editMap(path string, edit func(m *sidescroll.MapDocument) error) (*sidescroll.MapDocument, error) {
	m, err := sidescroll.LoadMapFile(path, false)
	if err != nil {
		return nil, err
	}
	if err := edit(m); err != nil {
		return nil, err
	}
	if err := m.Save(path, true); err != nil {
		return nil, err
	}
	return m, nil
}

type SetCmd struct {
	File  string `arg:"" help:"Map file." type:"existingfile"`
	X     int    `arg:"" help:"Column."`
	Y     int    `arg:"" help:"Row."`
	Value uint8  `arg:"" help:"Tile index."`
}

func (c *SetCmd) Run(g *Globals) error {
	_, err := editMap(c.File, func(m *sidescroll.MapDocument) error {
		return m.SetTile(c.X, c.Y, c.Value)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "set (%d,%d) = %d in %s\n", c.X, c.Y, c.Value, c.File)
	return nil
}

type FillCmd struct {
	File  string `arg:"" help:"Map file." type:"existingfile"`
	Value uint8  `arg:"" help:"Tile index."`
}

func (c *FillCmd) Run(g *Globals) error {
	m, err := editMap(c.File, func(m *sidescroll.MapDocument) error {
		m.Fill(c.Value)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "filled %d tiles with %d in %s\n", m.Width()*m.Height(), c.Value, c.File)
	return nil
}

type ResizeCmd struct {
	File   string `arg:"" help:"Map file." type:"existingfile"`
	Width  *int   `help:"New number of columns."`
	Height *int   `help:"New number of rows."`
}

func (c *ResizeCmd) Run(g *Globals) error {
	m, err := editMap(c.File, func(m *sidescroll.MapDocument) error {
		if c.Width != nil {
			if err := m.SetWidth(*c.Width); err != nil {
				return err
			}
		}
		if c.Height != nil {
			if err := m.SetHeight(*c.Height); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "resized %s to %dx%d\n", c.File, m.Width(), m.Height())
	return nil
}

type RenameCmd struct {
	File       string  `arg:"" help:"Map file." type:"existingfile"`
	Background *string `help:"New background texture name." short:"b"`
	Tileset    *string `help:"New tileset texture name." short:"t"`
}

func (c *RenameCmd) Run(g *Globals) error {
	m, err := editMap(c.File, func(m *sidescroll.MapDocument) error {
		if c.Background != nil {
			if err := m.SetBackgroundName(*c.Background); err != nil {
				return err
			}
		}
		if c.Tileset != nil {
			if err := m.SetTilesetName(*c.Tileset); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "%s: background %q, tileset %q\n", c.File, m.BackgroundName().String(), m.TilesetName().String())
	return nil
}
