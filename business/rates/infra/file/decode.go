// Package file implements a file-backed table source.
package file

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodingReader wraps r so the stream comes out as UTF-8 regardless of
// the file's encoding. Legacy rate files are UTF-16; encoding selects
// "utf-8", "utf-16", or "auto" (BOM sniffing).
func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	br := bufio.NewReader(r)

	useUTF16 := encoding == "utf-16"
	if encoding == "auto" {
		bom, err := br.Peek(2)
		if err == nil && len(bom) == 2 {
			if (bom[0] == 0xFF && bom[1] == 0xFE) || (bom[0] == 0xFE && bom[1] == 0xFF) {
				useUTF16 = true
			}
		}
	}

	if useUTF16 {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	}

	// plain UTF-8, tolerating a BOM
	return transform.NewReader(br, unicode.UTF8BOM.NewDecoder()), nil
}
