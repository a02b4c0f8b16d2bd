package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Charset resolves a configured charset name. "utf-8" (or "") returns nil,
// meaning no transcoding.
func Charset(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "cp437", "ibm437":
		return charmap.CodePage437, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "big5", "ms950":
		return traditionalchinese.Big5, nil
	}
	return nil, fmt.Errorf("unknown charset %q", name)
}
