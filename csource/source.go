// Package csource presents a UTF-32-oriented view over UTF-8 input with
// lookahead, backtrack, and in-place fold operations (replace/erase) the
// lexer needs for trigraph folding, line splicing and UCN folding.
package csource

import (
	"bytes"
	"io"
	"io/ioutil"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Eof is the sentinel rune value returned by Peek/Read/LastRead once the
// buffer is exhausted.
const Eof rune = -1

// Source holds a fully decoded source file: its rune buffer (mutable,
// spliced in place by Replace/Erase as the reader folds trigraphs and
// UCNs) and a byte-offset line table used for Line/Column lookups.
type Source struct {
	name        string
	runes       []rune
	byteOffsets []int // byteOffsets[i] = original byte offset of runes[i]
	contentLen  int   // total byte length, for EOF position reporting

	lineStarts    []int // byte offsets of line starts, binary-searched
	prevLineIndex int
}

// New reads r fully (optionally through a transcoder, see Transcode) and
// decodes it as UTF-8. Any read error is returned to the caller as a
// *werrors.Err (see errIO) and no Source is built.
func New (name string, r io.Reader) (*Source, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errIO(name, err)
	}
	return newFromBytes(name, content), nil
}

// Transcode wraps r with enc's decoder before reading, backing the
// "-finput-locale=<locale>" option (spec §6.1): text files in a legacy
// 8-bit encoding are transcoded to UTF-8 before the lexer ever sees them.
func Transcode (name string, r io.Reader, enc encoding.Encoding) (*Source, error) {
	return New(name, transform.NewReader(r, enc.NewDecoder()))
}

func newFromBytes (name string, content []byte) *Source {
	s := &Source{name: name, contentLen: len(content), prevLineIndex: -1}

	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	s.runes = make([]rune, 0, len(content))
	s.byteOffsets = make([]int, 0, len(content))
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		s.runes = append(s.runes, r)
		s.byteOffsets = append(s.byteOffsets, i)
		i += size
	}

	return s
}

// Name returns the source's display name (filename or "<stdin>").
func (s *Source) Name () string { return s.name }

// LineCol returns the 1-based line and column for a byte offset, using the
// same binary-search-with-cache strategy as the line table this is
// grounded on.
func (s *Source) LineCol (byteOffset int) (line, col int) {
	var lineIndex int
	switch {
	case byteOffset < 0:
		byteOffset = 0
		lineIndex = 0
	case byteOffset >= s.contentLen:
		byteOffset = s.contentLen
		lineIndex = len(s.lineStarts) - 1
	default:
		lineIndex = s.findLineIndex(byteOffset)
	}

	lineStart := s.lineStarts[lineIndex]
	lineStartRune := sort.SearchInts(s.byteOffsets, lineStart)
	offsetRune := sort.SearchInts(s.byteOffsets, byteOffset)
	return lineIndex + 1, offsetRune - lineStartRune + 1
}

func (s *Source) findLineIndex (pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	leftIndex, rightIndex := 0, len(s.lineStarts)-1
	if s.prevLineIndex >= 0 {
		rightIndex = s.prevLineIndex
	}
	index := leftIndex
	for leftIndex < rightIndex {
		index = (leftIndex + rightIndex + 1) >> 1
		lineStart := s.lineStarts[index]
		if lineStart == pos {
			break
		} else if lineStart < pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
			index = rightIndex
		}
	}
	s.prevLineIndex = index
	return index
}
