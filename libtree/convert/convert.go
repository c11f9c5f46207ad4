// Package convert translates graph batches between the text form read and written by libtree and a flat binary form.
//
// Binary form (all values 4-byte little-endian signed integers):
//
//	count
//	size, size*size cells (0 or 1)    <- repeated count times
//
// Text form: the count on its own line, then per graph a line holding size followed by size rows of '0' / '1'.
package convert

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/2x3systems/gotree/gotree"
	"github.com/2x3systems/gotree/libtree"
	"github.com/pkg/errors"
)

// MaxBinaryGraphSize bounds the size field accepted from binary input.
const MaxBinaryGraphSize = gotree.MaxVerts

// TextToBinary reads a text batch from in and writes its binary form to out.
// Cells are copied as written: '0' becomes 0 and any other character becomes 1.
func TextToBinary(in io.Reader, out io.Writer) (int, error) {
	gr := libtree.NewGraphReader(in)
	count, err := gr.ReadInt()
	if err == io.EOF {
		err = errors.Wrap(gotree.ErrBadGraphText, "missing graph count")
	}
	if err != nil {
		return 0, errors.Wrap(err, "reading graph count")
	}

	bw := bufio.NewWriter(out)
	if err = writeInt32(bw, count); err != nil {
		return 0, err
	}
	for i := 0; i < count; i++ {
		N, cells, err := gr.ReadCells()
		if err != nil {
			if err == io.EOF {
				err = errors.Wrapf(gotree.ErrBadGraphText, "expected %d graphs, got %d", count, i)
			}
			return i, err
		}
		if err = writeInt32(bw, N); err != nil {
			return i, err
		}
		for _, c := range cells {
			v := 1
			if c == '0' {
				v = 0
			}
			if err = writeInt32(bw, v); err != nil {
				return i, err
			}
		}
	}
	return count, bw.Flush()
}

// BinaryToText reads a binary batch from in and writes its text form to out, one row per line.
func BinaryToText(in io.Reader, out io.Writer) (int, error) {
	br := bufio.NewReader(in)
	bw := bufio.NewWriter(out)

	count, err := readInt32(br)
	if err != nil {
		return 0, errors.Wrap(gotree.ErrBadEncoding, "missing graph count")
	}
	if count < 0 {
		return 0, errors.Wrapf(gotree.ErrBadEncoding, "graph count %d", count)
	}
	fmt.Fprintf(bw, "%d\n", count)

	row := make([]byte, 0, 64)
	for i := 0; i < count; i++ {
		size, err := readInt32(br)
		if err != nil {
			return i, errors.Wrapf(gotree.ErrBadEncoding, "graph %d: missing size", i)
		}
		if size < 0 || size > MaxBinaryGraphSize {
			return i, errors.Wrapf(gotree.ErrBadEncoding, "graph %d: size %d", i, size)
		}
		fmt.Fprintf(bw, "%d\n", size)
		for r := 0; r < size; r++ {
			row = row[:0]
			for c := 0; c < size; c++ {
				v, err := readInt32(br)
				if err != nil {
					return i, errors.Wrapf(gotree.ErrBadEncoding, "graph %d: truncated at cell (%d,%d)", i, r, c)
				}
				cell := byte('1')
				if v == 0 {
					cell = '0'
				}
				row = append(row, cell)
			}
			row = append(row, '\n')
			bw.Write(row)
		}
	}
	return count, bw.Flush()
}

func writeInt32(w io.Writer, v int) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(v)))
	_, err := w.Write(buf[:])
	return err
}

func readInt32(r io.Reader) (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int(int32(binary.LittleEndian.Uint32(buf[:]))), nil
}
