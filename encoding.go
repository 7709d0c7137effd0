package json

// TextEncoding is the result of sniffing the leading bytes of a JSON
// input for its Unicode transformation format. Only UTF-8 is accepted
// by the parser; the others are reported so a caller can transcode
// first or reject the input with a clear message instead of having it
// silently misparsed byte-by-byte as UTF-8.
type TextEncoding int

const (
	EncodingUTF8 TextEncoding = iota
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingUTF32LE
	EncodingUTF32BE
)

func (e TextEncoding) String() string {
	switch e {
	case EncodingUTF16LE:
		return "UTF-16LE"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF32LE:
		return "UTF-32LE"
	case EncodingUTF32BE:
		return "UTF-32BE"
	default:
		return "UTF-8"
	}
}

// DetectEncoding classifies the first up to four bytes of a JSON input
// by their leading zero-byte pattern. A conforming JSON text's first
// two characters are always ASCII, which is what makes the zero-byte
// pattern diagnostic of the encoding's endianness and unit width
// without a BOM.
func DetectEncoding(b []byte) TextEncoding {
	var pat [4]bool // pat[i] == true means byte i is zero
	for i := 0; i < 4; i++ {
		if i < len(b) {
			pat[i] = b[i] == 0
		}
	}
	switch {
	case pat[0] && pat[1] && pat[2] && !pat[3]:
		return EncodingUTF32BE
	case pat[0] && !pat[1] && pat[2] && !pat[3]:
		return EncodingUTF16BE
	case !pat[0] && pat[1] && pat[2] && pat[3]:
		return EncodingUTF32LE
	case !pat[0] && pat[1] && !pat[2] && pat[3]:
		return EncodingUTF16LE
	default:
		return EncodingUTF8
	}
}
