// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"fmt"
	"io"
)

// Seekable returns r itself when it can seek, otherwise it buffers the whole
// stream in memory. The go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffer stream: %w", err)
	}

	return bytes.NewReader(data), nil
}
