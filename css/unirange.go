package css

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

const maxCodePoint = unicode.MaxRune

// RuneRange is an inclusive interval of code points.
type RuneRange struct {
	Lo, Hi rune
}

// ParseUnicodeRange parses value of unicode-range descriptor: comma separated
// list of "U+X", "U+X-Y" and "U+X??" items. Empty value yields no ranges.
func ParseUnicodeRange(value string) ([]RuneRange, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	var ranges []RuneRange
	for item := range strings.SplitSeq(value, ",") {
		r, err := parseRangeItem(strings.TrimSpace(item))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseRangeItem(item string) (RuneRange, error) {
	if len(item) < 3 || (item[0] != 'U' && item[0] != 'u') || item[1] != '+' {
		return RuneRange{}, fmt.Errorf("bad unicode range %q", item)
	}
	body := item[2:]

	if strings.Contains(body, "?") {
		if strings.Contains(strings.TrimRight(body, "?"), "?") {
			return RuneRange{}, fmt.Errorf("bad wildcard in unicode range %q", item)
		}
		lo, err := parseCodePoint(strings.ReplaceAll(body, "?", "0"), item)
		if err != nil {
			return RuneRange{}, err
		}
		hi, err := parseCodePoint(strings.ReplaceAll(body, "?", "F"), item)
		if err != nil {
			return RuneRange{}, err
		}
		return RuneRange{Lo: lo, Hi: hi}, nil
	}

	start, end, isRange := strings.Cut(body, "-")
	lo, err := parseCodePoint(start, item)
	if err != nil {
		return RuneRange{}, err
	}
	hi := lo
	if isRange {
		if hi, err = parseCodePoint(end, item); err != nil {
			return RuneRange{}, err
		}
	}
	if lo > hi {
		return RuneRange{}, fmt.Errorf("inverted unicode range %q", item)
	}
	return RuneRange{Lo: lo, Hi: hi}, nil
}

func parseCodePoint(hex, item string) (rune, error) {
	if len(hex) == 0 || len(hex) > 6 {
		return 0, fmt.Errorf("bad code point in unicode range %q", item)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad code point in unicode range %q: %w", item, err)
	}
	if v > maxCodePoint {
		return 0, fmt.Errorf("code point out of range in unicode range %q", item)
	}
	return rune(v), nil
}

// Coverage merges ranges into a single table.
func Coverage(ranges ...RuneRange) *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, r := range ranges {
		tables = append(tables, rangeTable(r))
	}
	return rangetable.Merge(tables...)
}

func rangeTable(r RuneRange) *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	if r.Lo <= 0xFFFF {
		rt.R16 = []unicode.Range16{{Lo: uint16(r.Lo), Hi: uint16(min(r.Hi, 0xFFFF)), Stride: 1}}
		if r.Hi <= unicode.MaxLatin1 {
			rt.LatinOffset = 1
		}
	}
	if r.Hi > 0xFFFF {
		rt.R32 = []unicode.Range32{{Lo: uint32(max(r.Lo, 0x10000)), Hi: uint32(r.Hi), Stride: 1}}
	}
	return rt
}

// CodePoints returns number of code points in the table.
func CodePoints(rt *unicode.RangeTable) int {
	if rt == nil {
		return 0
	}
	var n int
	for _, r := range rt.R16 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	for _, r := range rt.R32 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	return n
}
