package charset

import (
	"bytes"
	"strings"

	pstrings "chardetcompat/internal/platform/strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// codecAliases maps folded charset names (see pstrings.FoldLabel) to codec labels.
// iso-8859-N and windows-N are handled by prefix in codecLabel
var codecAliases = map[string]string{
	"utf_8":          "utf_8",
	"utf8":           "utf_8",
	"us_ascii":       "ascii",
	"ascii":          "ascii",
	"utf_16":         "utf_16",
	"utf_16be":       "utf_16_be",
	"utf_16le":       "utf_16_le",
	"utf_32":         "utf_32",
	"utf_32be":       "utf_32_be",
	"utf_32le":       "utf_32_le",
	"shift_jis":      "shift_jis",
	"windows_31j":    "cp932",
	"gb_18030":       "gb18030",
	"gb18030":        "gb18030",
	"gbk":            "gbk",
	"gb2312":         "gb2312",
	"euc_jp":         "euc_jp",
	"euc_kr":         "euc_kr",
	"big5":           "big5",
	"iso_2022_jp":    "iso2022_jp",
	"iso_2022_kr":    "iso2022_kr",
	"koi8_r":         "koi8_r",
	"koi8_u":         "koi8_u",
	"ibm855":         "cp855",
	"ibm866":         "cp866",
	"macintosh":      "mac_roman",
	"x_mac_cyrillic": "mac_cyrillic",
	"tis_620":        "tis_620",
	"iso_8859_8_i":   "iso8859_8",
}

// codecLabel turns a detector charset name ("ISO-8859-1", "windows-1252", "Shift_JIS")
// into a codec label ("iso8859_1", "cp1252", "shift_jis")
func codecLabel(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	n := pstrings.FoldLabel(name)
	if l, ok := knownLabel(n); ok {
		return l
	}

	// resolve aliases ("latin1", "csShiftJIS", ...) through the preferred MIME name
	if canon := mimeName(name); canon != "" {
		if l, ok := knownLabel(pstrings.FoldLabel(canon)); ok {
			return l
		}
	}
	return n
}

func knownLabel(n string) (string, bool) {
	if l, ok := codecAliases[n]; ok {
		return l, true
	}
	switch {
	case strings.HasPrefix(n, "iso_8859_"):
		return "iso8859_" + strings.TrimPrefix(n, "iso_8859_"), true
	case strings.HasPrefix(n, "windows_"):
		return "cp" + strings.TrimPrefix(n, "windows_"), true
	}
	return "", false
}

func mimeName(name string) string {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return ""
	}
	if canon, err := ianaindex.MIME.Name(enc); err == nil {
		return canon
	}
	if canon, err := ianaindex.IANA.Name(enc); err == nil {
		return canon
	}
	return ""
}

// languageName maps an ISO-639 code to its English name
func languageName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return UnknownLanguage
	}
	tag, err := language.Parse(code)
	if err != nil {
		return UnknownLanguage
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return UnknownLanguage
}

var boms = map[string][]byte{
	"utf_8":     {0xEF, 0xBB, 0xBF},
	"utf_16_le": {0xFF, 0xFE},
	"utf_16_be": {0xFE, 0xFF},
	"utf_32_le": {0xFF, 0xFE, 0x00, 0x00},
	"utf_32_be": {0x00, 0x00, 0xFE, 0xFF},
	"gb18030":   {0x84, 0x31, 0x95, 0x33},
}

// hasBOM reports whether b starts with the byte order mark of codec label
func hasBOM(label string, b []byte) bool {
	mark, ok := boms[label]
	return ok && bytes.HasPrefix(b, mark)
}
