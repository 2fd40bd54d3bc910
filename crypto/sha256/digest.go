// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha256

import "hash"

// digest is a streaming SHA-256 for callers that do not know the message
// length in advance. It shares the block function and the padding layout
// with Hasher.
type digest struct {
	h   [8]uint32
	x   [2 * BlockSize]byte
	nx  int
	len uint64
}

func (d *digest) Reset() {
	d.h = _IV
	d.nx = 0
	d.len = 0
}

// New returns a new hash.Hash computing the SHA256 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:BlockSize], p)
		d.nx += n
		if d.nx == BlockSize {
			block(&d.h, d.x[:BlockSize])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:BlockSize], p)
	}
	return
}

func (d *digest) Sum(in []byte) []byte {
	// Make a copy of d so that caller can keep writing and summing.
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() Digest {
	plan, err := NewPaddingPlan(int64(d.len << 3))
	if err != nil {
		panic("sha256: message too long")
	}
	final, err := plan.AppendPadding(d.x[:d.nx])
	if err != nil {
		panic("sha256: " + err.Error())
	}
	block(&d.h, final)
	return digestOf(&d.h)
}

// Sum256 returns the SHA256 checksum of the data.
func Sum256(data []byte) Digest {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
