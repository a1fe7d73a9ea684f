package sidescroll

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

// ResourceKind selects the directory and extension a resource name resolves to.
type ResourceKind uint8

const (
	KindMap     ResourceKind = iota // Cmfs/<name>.cmf
	KindEntity                      // Entities/<name>.xml
	KindTexture                     // Textures/<name>.bmp
)

var kindLayout = [...]struct {
	dir  string
	exts []string
}{
	KindMap:     {"Cmfs", []string{".cmf"}},
	KindEntity:  {"Entities", []string{".xml"}},
	KindTexture: {"Textures", []string{".bmp", ".png"}},
}

func (k ResourceKind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindEntity:
		return "entity"
	case KindTexture:
		return "texture"
	default:
		return fmt.Sprintf("ResourceKind(%d)", uint8(k))
	}
}

// Store resolves resource names to files inside a data directory.
type Store struct {
	fsys fs.FS
}

// NewStore creates a Store reading from fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// NewDirStore creates a Store rooted at the directory dir.
func NewDirStore(dir string) *Store {
	return NewStore(os.DirFS(dir))
}

// Path returns the primary slash-separated path a resource resolves to.
func (s *Store) Path(kind ResourceKind, name string) string {
	l := kindLayout[kind]
	return path.Join(l.dir, name+l.exts[0])
}

// Open opens the named resource. Textures fall back through each accepted
// extension in order. Failures wrap ErrIO.
func (s *Store) Open(kind ResourceKind, name string) (io.ReadCloser, error) {
	if s == nil || s.fsys == nil {
		return nil, fmt.Errorf("sidescroll: no store to open %s %q: %w", kind, name, ErrIO)
	}
	l := kindLayout[kind]
	var firstErr error
	for _, ext := range l.exts {
		p := path.Join(l.dir, name+ext)
		f, err := s.fsys.Open(p)
		if err == nil {
			return f, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	return nil, fmt.Errorf("sidescroll: open %s %q: %w: %w", kind, name, ErrIO, firstErr)
}

// ReadAll reads the whole named resource.
func (s *Store) ReadAll(kind ResourceKind, name string) ([]byte, error) {
	f, err := s.Open(kind, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("sidescroll: read %s %q: %w: %w", kind, name, ErrIO, err)
	}
	return data, nil
}
