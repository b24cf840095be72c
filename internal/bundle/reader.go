// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
)

const blockSize = 512

// Entry is one file of a bundle archive. Body is valid until the next call
// to Reader.Next.
type Entry struct {
	Name string
	Size int64
	Body io.Reader
}

// Reader pulls entries from a tar stream one at a time. Entries are returned
// in stream order; calling Next discards whatever is left of the previous
// body.
type Reader struct {
	tr  *tar.Reader
	src *countingReader
	// dataEnd is the stream offset at which the padded data of the last
	// entry ends.
	dataEnd int64
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	src := &countingReader{r: r}
	return &Reader{tr: tar.NewReader(src), src: src}
}

// Next returns the next file entry. It returns io.EOF only once the
// archive's end-of-archive marker has been read in full; a stream that ends
// anywhere else fails with ErrMalformedArchive. Directories are skipped.
// Links and other header-only entries are returned with an empty body.
func (r *Reader) Next() (*Entry, error) {
	for {
		hdr, err := r.tr.Next()
		if errors.Is(err, io.EOF) {
			if err = r.checkEnd(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
		}

		size := hdr.Size
		if headerOnly(hdr.Typeflag) {
			size = 0
		}
		r.dataEnd = r.src.n + padded(size)

		if hdr.Typeflag == tar.TypeDir {
			continue
		}

		return &Entry{Name: hdr.Name, Size: size, Body: io.LimitReader(r.tr, size)}, nil
	}
}

// checkEnd reports whether the stream stopped right after the two zero
// blocks that follow the last entry.
func (r *Reader) checkEnd() error {
	if r.src.n%blockSize != 0 || r.src.n < r.dataEnd+2*blockSize {
		return fmt.Errorf("%w: stream ended at byte %d before the end-of-archive marker", ErrMalformedArchive, r.src.n)
	}
	return nil
}

func headerOnly(flag byte) bool {
	switch flag {
	case tar.TypeLink, tar.TypeSymlink, tar.TypeChar, tar.TypeBlock, tar.TypeDir, tar.TypeFifo:
		return true
	}
	return false
}

func padded(size int64) int64 {
	return (size + blockSize - 1) / blockSize * blockSize
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
