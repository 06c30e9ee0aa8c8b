// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package resource implements the compiled form of script resources.
//
// A compiled resource is a fixed header followed by the bytes produced by an
// external compiler:
//
//	version uint32 (little-endian)
//	size    uint32 (little-endian)
//	data    [size]byte
package resource

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// HeaderSize is the encoded size of a Header in bytes.
const HeaderSize = 8

// A Header precedes the data of a compiled resource.
type Header struct {
	Version uint32 // the resource format version
	Size    uint32 // the length of the data in bytes
}

// WriteBlob writes a header for data with the given version, followed by
// data itself, to w.
func WriteBlob(w io.Writer, version uint32, data []byte) error {
	if uint64(len(data)) > uint64(^uint32(0)) {
		return fmt.Errorf("resource data too large (%d bytes)", len(data))
	}
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:], version)
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(data)))
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	return nil
}

// ReadBlob reads a header and the data it describes from r.
func ReadBlob(r io.Reader) (Header, []byte, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, nil, fmt.Errorf("read header: %w", err)
	}
	h := Header{
		Version: binary.LittleEndian.Uint32(buf[0:]),
		Size:    binary.LittleEndian.Uint32(buf[4:]),
	}
	data := make([]byte, h.Size)
	if _, err := io.ReadFull(r, data); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return h, nil, fmt.Errorf("read data: %w", err)
	}
	return h, data, nil
}

// A Compiler runs an external program to compile script sources, and packs
// its output as a resource blob.
//
// The program is invoked as
//
//	Command [Flags...] source output
//
// and must write the compiled form of source to the output path.
type Compiler struct {
	Command    string   // the compiler program
	Flags      []string // flags passed in normal builds
	DebugFlags []string // flags passed instead of Flags if Debug is set
	Debug      bool     // keep debugging information
	Version    uint32   // the version recorded in the blob header

	// If non-nil, the compiler logs its progress here.
	Logger *zap.Logger
}

func (c *Compiler) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Compile compiles the source file at srcPath and writes the resulting
// resource blob to w. The output of the compiler is written to a temporary
// file, which is removed before Compile returns.
func (c *Compiler) Compile(ctx context.Context, srcPath string, w io.Writer) error {
	if c.Command == "" {
		return errors.New("no compiler command")
	}
	log := c.logger().With(zap.String("source", srcPath))

	tmp, err := os.CreateTemp("", "bc-*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	flags := c.Flags
	if c.Debug {
		flags = c.DebugFlags
	}
	args := append(append([]string(nil), flags...), srcPath, tmpPath)
	cmd := exec.CommandContext(ctx, c.Command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug("running compiler", zap.String("command", c.Command), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		log.Error("compiler failed", zap.Error(err), zap.ByteString("stderr", stderr.Bytes()))
		return fmt.Errorf("compile %q: %w", srcPath, err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("read compiler output: %w", err)
	}
	log.Debug("compiled", zap.Int("bytes", len(data)), zap.Uint32("version", c.Version))
	return WriteBlob(w, c.Version, data)
}
