// Package wire implements the length-delimited framing used on bank
// connections. A frame is a one-byte kind, a big-endian uint32 payload length
// and the payload itself.
package wire

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type Kind byte

const (
	KindTag    Kind = 1
	KindText   Kind = 2
	KindCipher Kind = 3
)

const (
	headerSize = 5

	DefaultMaxPayloadSize = 64 * 1024
)

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindText:
		return "text"
	case KindCipher:
		return "cipher"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

func (k Kind) valid() bool {
	return k == KindTag || k == KindText || k == KindCipher
}

//region FramingError

// FramingError means the stream can no longer be split into frames.
type FramingError struct {
	Msg string
}

func (e *FramingError) Error() string {
	return e.Msg
}

func (e *FramingError) Is(target error) bool {
	_, ok := target.(*FramingError)
	return ok
}

//endregion

type Frame struct {
	Kind    Kind
	Payload []byte
}

func Tag(tag string) Frame {
	return Frame{Kind: KindTag, Payload: []byte(tag)}
}

func Text(text string) Frame {
	return Frame{Kind: KindText, Payload: []byte(text)}
}

func Cipher(blob []byte) Frame {
	return Frame{Kind: KindCipher, Payload: blob}
}

func (f Frame) String() string {
	return string(f.Payload)
}

type Reader struct {
	r              *bufio.Reader
	maxPayloadSize uint32
}

func NewReader(r io.Reader, maxPayloadSize int) *Reader {
	if maxPayloadSize <= 0 {
		maxPayloadSize = DefaultMaxPayloadSize
	}

	return &Reader{
		r:              bufio.NewReader(r),
		maxPayloadSize: uint32(maxPayloadSize),
	}
}

// ReadFrame returns io.EOF only when the stream ends exactly on a frame
// boundary.
func (r *Reader) ReadFrame() (Frame, error) {
	var header [headerSize]byte

	n, err := io.ReadFull(r.r, header[:])
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return Frame{}, io.EOF
		}
		if errors.Is(err, io.EOF) {
			return Frame{}, io.ErrUnexpectedEOF
		}

		return Frame{}, err
	}

	kind := Kind(header[0])
	if !kind.valid() {
		return Frame{}, &FramingError{Msg: fmt.Sprintf("unknown frame kind %d", header[0])}
	}

	size := binary.BigEndian.Uint32(header[1:])
	if size > r.maxPayloadSize {
		return Frame{}, &FramingError{Msg: fmt.Sprintf("frame payload of %d bytes exceeds limit of %d", size, r.maxPayloadSize)}
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.ErrUnexpectedEOF
		}

		return Frame{}, err
	}

	return Frame{Kind: kind, Payload: payload}, nil
}

type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteFrames writes all frames and flushes once.
func (w *Writer) WriteFrames(frames ...Frame) error {
	var header [headerSize]byte

	for _, frame := range frames {
		header[0] = byte(frame.Kind)
		binary.BigEndian.PutUint32(header[1:], uint32(len(frame.Payload)))

		if _, err := w.w.Write(header[:]); err != nil {
			return fmt.Errorf("failed to write frame header: %w", err)
		}
		if _, err := w.w.Write(frame.Payload); err != nil {
			return fmt.Errorf("failed to write frame payload: %w", err)
		}
	}

	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush frames: %w", err)
	}

	return nil
}
