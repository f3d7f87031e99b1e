package css

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"ffgen/common"
)

const commentClose = "*/"

var (
	fontFacePattern     = regexp.MustCompile(`(?s)@font-face\s*\{(.*?)\}`)
	assetURLPattern     = regexp.MustCompile(`url\("?\./(.*?)"?\)`)
	unicodeRangePattern = regexp.MustCompile(`unicode-range:\s*(.*?);`)
)

// Extractor splits stylesheet into header and font faces.
type Extractor struct {
	log      *zap.Logger
	mode     common.MatchMode
	unclosed common.UnclosedHeaderPolicy
}

// NewExtractor creates extractor working in requested mode.
func NewExtractor(log *zap.Logger, mode common.MatchMode, unclosed common.UnclosedHeaderPolicy) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log.Named("css-extractor"), mode: mode, unclosed: unclosed}
}

// Extract processes stylesheet text. The optional source parameter identifies
// what's being processed (for debug logging).
func (e *Extractor) Extract(data []byte, source ...string) (*Document, error) {
	if len(source) > 0 && source[0] != "" {
		e.log.Debug("Extracting font faces", zap.String("source", source[0]), zap.Int("bytes", len(data)), zap.Stringer("mode", e.mode))
	}

	doc := &Document{}
	lines := splitLines(data)

	var header strings.Builder
	first := len(lines)
	for i, line := range lines {
		header.Write(line)
		if bytes.Contains(line, []byte(commentClose)) {
			doc.HeaderClosed = true
			first = i + 1
			break
		}
	}
	doc.Header = header.String()

	if !doc.HeaderClosed {
		if e.unclosed == common.UnclosedHeaderPolicyError {
			return nil, ErrUnclosedHeader
		}
		e.log.Warn("Header comment is not closed, whole stylesheet is treated as header")
		return doc, nil
	}

	switch e.mode {
	case common.MatchModeLine:
		doc.Faces = e.scanLines(lines[first:], first)
	case common.MatchModeBlock:
		doc.Faces = e.scanBlocks(bytes.Join(lines[first:], nil), first)
	default:
		return nil, fmt.Errorf("unsupported match mode %s", e.mode)
	}
	return doc, nil
}

// splitLines keeps line terminators so header could be reproduced byte for byte.
func splitLines(data []byte) [][]byte {
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// scanLines looks for a single complete block on every line. offset is the
// number of header lines preceding.
func (e *Extractor) scanLines(lines [][]byte, offset int) []FontFace {
	var faces []FontFace
	for i, line := range lines {
		m := fontFacePattern.FindSubmatch(line)
		if m == nil {
			continue
		}
		face, ok := faceFromBlock(string(m[1]))
		if !ok {
			e.log.Debug("Skipping @font-face without relative url", zap.Int("line", offset+i+1))
			continue
		}
		face.SourceLine = offset + i + 1
		faces = append(faces, face)
	}
	return faces
}

// faceFromBlock extracts asset and range from the block interior.
func faceFromBlock(block string) (FontFace, bool) {
	u := assetURLPattern.FindStringSubmatch(block)
	if u == nil {
		return FontFace{}, false
	}
	face := FontFace{AssetPath: u[1]}
	if r := unicodeRangePattern.FindStringSubmatch(block); r != nil {
		face.UnicodeRange = r[1]
	}
	return face, true
}
