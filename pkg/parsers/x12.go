package parsers

import (
	"os"
	"strings"

	"github.com/oarkflow/errors"
)

// ErrEmptyDocument is returned when the input contains no segments at all.
var ErrEmptyDocument = errors.New("x12: no segments in document")

// X12Parser tokenizes and assembles 837 interchanges.
type X12Parser struct {
	segmentTerminator string
	elementSeparator  string
}

// NewX12Parser creates a parser with the standard 837 delimiters.
func NewX12Parser() *X12Parser {
	return &X12Parser{
		segmentTerminator: "~",
		elementSeparator:  "*",
	}
}

// Detect checks if the data looks like an X12 interchange.
func (p *X12Parser) Detect(data []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(data)), "ISA")
}

// Tokenize splits raw content into segments of elements. Segments are
// terminated by "~"; when the content carries none, newline and pipe
// delimited files are accepted as well. Each segment is trimmed and empty
// segments are dropped.
func (p *X12Parser) Tokenize(content string) [][]string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var raw []string
	if strings.Contains(content, p.segmentTerminator) {
		raw = strings.Split(content, p.segmentTerminator)
	} else {
		for _, delimiter := range []string{"\r\n", "\n", "|"} {
			if strings.Contains(content, delimiter) {
				raw = strings.Split(content, delimiter)
				break
			}
		}
		if raw == nil {
			raw = []string{content}
		}
	}

	var segments [][]string
	for _, seg := range raw {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segments = append(segments, strings.Split(seg, p.elementSeparator))
	}
	return segments
}

// Parse tokenizes the content and assembles the document tree.
func (p *X12Parser) Parse(content string) (*Document, error) {
	segments := p.Tokenize(content)
	if len(segments) == 0 {
		return nil, ErrEmptyDocument
	}
	asm := newAssembler()
	for _, elements := range segments {
		asm.consume(elements)
	}
	return asm.doc, nil
}

// ParseFile reads the file and parses its content.
func (p *X12Parser) ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := p.Parse(string(data))
	if err != nil {
		return nil, err
	}
	doc.SourcePath = path
	return doc, nil
}

// Parse is a convenience wrapper over a default parser.
func Parse(content string) (*Document, error) {
	return NewX12Parser().Parse(content)
}

// ParseFile is a convenience wrapper over a default parser.
func ParseFile(path string) (*Document, error) {
	return NewX12Parser().ParseFile(path)
}
