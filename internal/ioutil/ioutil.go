// Package ioutil provides loop-driven full reads and writes over arbitrary
// io.Reader/io.Writer pairs, standing in for the fixed-fd read()/write()
// loops of the original control program.
package ioutil

import "io"

// FullRead reads exactly len(buf) bytes from r, looping over short reads.
// A read error, including io.EOF before buf is full, is returned verbatim
// (io.ReadFull reports io.ErrUnexpectedEOF for a partial read terminated by
// EOF, and io.EOF if nothing at all was read).
func FullRead(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}

// FullWrite writes all of buf to w, looping over short writes. Any error
// aborts immediately; partial progress already written is not undone.
func FullWrite(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
