// Package sidecar parses the msg_name.xmsbt label document and the
// ui_chara_db.prcxml index document that control in-game character name text.
package sidecar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sidecar file names. The binary forms are detected by presence only, never
// parsed.
const (
	LabelDocumentName = "msg_name.xmsbt"
	BinaryLabelName   = "msg_name.msbt"
	IndexDocumentName = "ui_chara_db.prcxml"
	BinaryIndexName   = "ui_chara_db.prc"
	BinaryIndexXName  = "ui_chara_db.prcx"
)

// ParseError reports a sidecar file that could not be read or decoded.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse sidecar %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// LabelEntry is one <entry> of the label document.
type LabelEntry struct {
	Label string `xml:"label,attr"`
	Text  string `xml:"text"`
}

// LabelDocument is the parsed msg_name.xmsbt param patch.
type LabelDocument struct {
	XMLName xml.Name     `xml:"xmsbt"`
	Entries []LabelEntry `xml:"entry"`
}

// ParseLabelDocument reads an .xmsbt file. Exported patches are frequently
// UTF-16 with a BOM; content is transcoded to UTF-8 before XML decoding.
func ParseLabelDocument(path string) (*LabelDocument, error) {
	data, err := readDecoded(path)
	if err != nil {
		return nil, err
	}
	var doc LabelDocument
	if err := decodeXML(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	return &doc, nil
}

// IndexDocument is the parsed ui_chara_db.prcxml param patch. Byte fields are
// indexed by their hash attribute; text values are kept in document order for
// the spelling cross-check.
type IndexDocument struct {
	fields map[string]string
	texts  []string
}

type xmlNode struct {
	XMLName  xml.Name
	Hash     string    `xml:"hash,attr"`
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// ParseIndexDocument reads a ui_chara_db.prcxml file.
func ParseIndexDocument(path string) (*IndexDocument, error) {
	data, err := readDecoded(path)
	if err != nil {
		return nil, err
	}
	var root xmlNode
	if err := decodeXML(data, &root); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	doc := &IndexDocument{fields: make(map[string]string)}
	doc.walk(root)
	return doc, nil
}

func (d *IndexDocument) walk(n xmlNode) {
	text := strings.TrimSpace(n.Text)
	if text != "" {
		d.texts = append(d.texts, text)
	}
	if n.XMLName.Local == "byte" && n.Hash != "" && text != "" {
		d.fields[n.Hash] = text
	}
	for _, child := range n.Children {
		d.walk(child)
	}
}

// IndexFor returns the integer value of the n0{slot}_index field when the
// document carries that edit.
func (d *IndexDocument) IndexFor(slot int) (int, bool) {
	raw, ok := d.fields[fmt.Sprintf("n0%d_index", slot)]
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Texts returns every non-blank text value in document order.
func (d *IndexDocument) Texts() []string {
	return d.texts
}

func readDecoded(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	if len(data) >= 2 && ((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF)) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return nil, &ParseError{Path: path, Cause: err}
		}
		return decoded, nil
	}
	return data, nil
}

func decodeXML(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Content is UTF-8 by the time the decoder sees it; any encoding still
	// declared in the prolog (often utf-16) no longer applies.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return dec.Decode(v)
}
