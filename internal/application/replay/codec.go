package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmptyRecording is returned when saving or loading a recording without
// frames.
var ErrEmptyRecording = errors.New("recording has no frames")

// ErrUnknownFormat is returned for a file extension with no codec.
var ErrUnknownFormat = errors.New("unknown replay format")

// Format is a recording encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// FormatFor picks the encoding from a file name.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
}

// Encode writes data in the given format.
func Encode(w io.Writer, f Format, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrEmptyRecording
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(data)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Decode reads a recording in the given format.
func Decode(r io.Reader, f Format) (*ReplayData, error) {
	var data ReplayData
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&data)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, ErrEmptyRecording
	}
	return &data, nil
}

// SaveReplay writes a recording, choosing the encoding from the extension.
func SaveReplay(filename string, data ReplayData) error {
	f, err := FormatFor(filename)
	if err != nil {
		return err
	}
	if len(data.Frames) == 0 {
		return ErrEmptyRecording
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(file, f, data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return file.Close()
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	f, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, f)
}
