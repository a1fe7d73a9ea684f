package sidescroll

import (
	"errors"
	"fmt"
)

// Error kinds returned by the engine. Every error produced by a load or
// create path wraps exactly one of these, so callers can test with errors.Is
// regardless of how many layers added context on the way up.
var (
	// ErrIO reports a missing or unreadable file.
	ErrIO = errors.New("i/o error")
	// ErrFormat reports a bad magic signature or truncated structure.
	ErrFormat = errors.New("bad format")
	// ErrIntegrity reports a checksum mismatch.
	ErrIntegrity = errors.New("checksum mismatch")
	// ErrRange reports an out-of-bounds tile access or an oversized value.
	ErrRange = errors.New("out of range")
	// ErrAlreadyExists reports a save that would overwrite a file.
	ErrAlreadyExists = errors.New("file already exists")
	// ErrSpriteFormat reports a sprite descriptor missing a required field.
	ErrSpriteFormat = errors.New("invalid sprite descriptor")
	// ErrEntityLoad reports an entity descriptor that could not be loaded.
	ErrEntityLoad = errors.New("entity load failed")
	// ErrAnimationNotFound reports an unknown animation name.
	ErrAnimationNotFound = errors.New("animation not found")
	// ErrResource reports a texture that could not be created.
	ErrResource = errors.New("resource creation failed")
	// ErrWorldCreation reports a world that could not be built.
	ErrWorldCreation = errors.New("world creation failed")
)

// unable wraps err with an "unable to <what>" note and tags it with kind.
// When err already carries kind the tag is not repeated.
func unable(kind error, what string, err error) error {
	if err == nil {
		return fmt.Errorf("sidescroll: unable to %s: %w", what, kind)
	}
	if kind == nil || errors.Is(err, kind) {
		return fmt.Errorf("sidescroll: unable to %s: %w", what, err)
	}
	return fmt.Errorf("sidescroll: unable to %s: %w: %w", what, kind, err)
}
