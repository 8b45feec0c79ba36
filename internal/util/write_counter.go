// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"io"
	"time"
)

// WriteCounter is an io.Writer that counts the bytes that reached the
// underlying writer, including those of a short write. With Progress set it
// also prints a status line, at most once per Interval.
type WriteCounter struct {
	Written    int64
	LastUpdate time.Time
	Writer     io.Writer
	Progress   io.Writer
	Interval   time.Duration

	currentAnim int
	printed     bool
}

func NewWriteCounter(writer io.Writer) *WriteCounter {
	return &WriteCounter{
		Writer:     writer,
		LastUpdate: time.Now(),
	}
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n, err := wc.Writer.Write(p)
	wc.Written += int64(n)

	if wc.Progress != nil && time.Since(wc.LastUpdate) >= wc.Interval {
		_, _ = fmt.Fprintf(wc.Progress, "\rAppending... %s written %c \033[K", ByteCountToHumanReadable(wc.Written), wc.animate())
		wc.LastUpdate = time.Now()
		wc.printed = true
	}
	return n, err
}

// Done ends the status line if one was printed.
func (wc *WriteCounter) Done() {
	if wc.printed {
		_, _ = fmt.Fprintln(wc.Progress)
		wc.printed = false
	}
}

func (wc *WriteCounter) animate() byte {
	anim := "/-\\|"
	wc.currentAnim = (wc.currentAnim + 1) % len(anim)
	return anim[wc.currentAnim]
}

// ByteCountToHumanReadable converts a byte count to a human-readable format (e.g., KB, MB, GB).
func ByteCountToHumanReadable(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
