package pty

import "os"

// Reader is the read half of a split PTY master.
type Reader struct {
	file *os.File
}

func (r *Reader) Read(p []byte) (int, error) { return r.file.Read(p) }

// Writer is the write half of a split PTY master.
type Writer struct {
	file *os.File
}

func (w *Writer) Write(p []byte) (int, error) { return w.file.Write(p) }
