package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// scanBlocks tokenizes rule text and visits every @font-face block, nested
// ones included. Lexer is lossless, so block interior is collected verbatim
// and the same url and unicode-range rules apply as in line mode. offset is
// the number of header lines preceding data.
func (e *Extractor) scanBlocks(data []byte, offset int) []FontFace {
	l := css.NewLexer(parse.NewInputBytes(data))

	var (
		faces []FontFace
		block strings.Builder
		line  = 1 // line current token starts on
		start int // line of pending @font-face, 0 if none
		depth int // brace nesting inside @font-face block
	)
	for {
		tt, text := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				e.log.Debug("CSS lexer error", zap.Int("line", offset+line), zap.Error(err))
			}
			if depth > 0 {
				e.log.Debug("Skipping unterminated @font-face", zap.Int("line", offset+start))
			}
			return faces
		}

		switch {
		case depth > 0:
			switch tt {
			case css.LeftBraceToken:
				depth++
			case css.RightBraceToken:
				depth--
			}
			if depth > 0 {
				block.Write(text)
				break
			}
			if face, ok := faceFromBlock(block.String()); ok {
				face.SourceLine = offset + start
				faces = append(faces, face)
			} else {
				e.log.Debug("Skipping @font-face without relative url", zap.Int("line", offset+start))
			}
			start = 0

		case start > 0 && (tt == css.WhitespaceToken || tt == css.CommentToken):
			// between at-keyword and its block

		case start > 0 && tt == css.LeftBraceToken:
			depth = 1
			block.Reset()

		case tt == css.AtKeywordToken && strings.EqualFold(string(text), "@font-face"):
			start = line

		default:
			start = 0
		}
		line += bytes.Count(text, []byte("\n"))
	}
}
