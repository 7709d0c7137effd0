package json

import "testing"

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		input    byte
		expected charClass
	}{
		{' ', classSpaceTabCR},
		{'\t', classSpaceTabCR},
		{'\r', classSpaceTabCR},
		{'\n', classNewline},
		{'{', classStartObject},
		{'}', classEndObject},
		{'[', classStartArray},
		{']', classEndArray},
		{':', classNameSeparator},
		{',', classValueSeparator},
		{'/', classSlash},
		{'#', classHash},
		{'"', classQuote},
		{0x01, classAsciiControl},
		{0x1F, classAsciiControl},
		{'a', classOther},
		{'0', classOther},
		{'-', classOther},
		{0x80, classNotAscii},
		{0xFF, classNotAscii},
	} {
		t.Run(string(rune(test.input)), func(t *testing.T) {
			if actual := classify(test.input); actual != test.expected {
				t.Errorf("classify(%q) = %v, want %v", test.input, actual, test.expected)
			}
		})
	}
}
