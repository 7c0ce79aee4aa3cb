package io

import (
	"encoding/binary"
	"io"
	"io/fs"
	"iter"
)

// Image is a binary instruction stream: 16-bit words, stored big-endian,
// two bytes each, with no header.
type Image struct {
	Data []uint16
}

var _ io.ReaderFrom = (*Image)(nil)
var _ io.WriterTo = (*Image)(nil)

// ReadFrom replaces the image with the words read from r.
func (im *Image) ReadFrom(r io.Reader) (n int64, err error) {
	data, err := io.ReadAll(r)
	n = int64(len(data))
	if err != nil {
		return
	}
	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	im.Data = make([]uint16, len(data)/2)
	for i := range im.Data {
		im.Data[i] = binary.BigEndian.Uint16(data[i*2:])
	}

	return
}

// WriteTo writes the image words to w.
func (im *Image) WriteTo(w io.Writer) (n int64, err error) {
	data := make([]byte, 0, len(im.Data)*2)
	for _, word := range im.Data {
		data = binary.BigEndian.AppendUint16(data, word)
	}

	wrote, err := w.Write(data)
	n = int64(wrote)

	return
}

// Words iterates over the image addresses and words.
func (im *Image) Words() iter.Seq2[int, uint16] {
	return func(yield func(n int, word uint16) bool) {
		for n, word := range im.Data {
			if !yield(n, word) {
				return
			}
		}
	}
}

// ReadImage reads a binary image.
func ReadImage(r io.Reader) (words []uint16, err error) {
	im := &Image{}
	_, err = im.ReadFrom(r)
	if err != nil {
		return
	}
	words = im.Data
	return
}

// WriteImage writes a binary image.
func WriteImage(w io.Writer, words []uint16) (err error) {
	im := &Image{Data: words}
	_, err = im.WriteTo(w)
	return
}

// LoadImage reads a binary image from a file system.
func LoadImage(fsys fs.FS, name string) (words []uint16, err error) {
	file, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	return ReadImage(file)
}
