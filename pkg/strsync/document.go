package strsync

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// contextSeparator joins a message context and id into one document key,
// the same way compiled gettext catalogs store them.
const contextSeparator = "\x04"

// Document maps message ids to their text per locale code:
//
//	{"first": {"en": "", "de": "erste"}}
//
// Messages with a context use "context\x04id" as key.
type Document map[string]map[string]Text

// Text is the translation of one message in one locale. Singular messages
// encode as a JSON string, plural messages as an array with one element
// per plural form.
type Text struct {
	Forms  []string
	Plural bool
}

// Singular returns the Text of a message without plural forms.
func Singular(s string) Text {
	return Text{Forms: []string{s}}
}

// Plural returns the Text of a plural message.
func Plural(forms ...string) Text {
	if forms == nil {
		forms = []string{}
	}
	return Text{Forms: forms, Plural: true}
}

// String returns the first form.
func (t Text) String() string {
	if len(t.Forms) == 0 {
		return ""
	}
	return t.Forms[0]
}

// Form returns the i-th plural form, or an empty string when it is missing.
func (t Text) Form(i int) string {
	if i < 0 || i >= len(t.Forms) {
		return ""
	}
	return t.Forms[i]
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.Plural {
		forms := t.Forms
		if forms == nil {
			forms = []string{}
		}
		return marshal(forms)
	}
	return marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var forms []string
		if err := json.Unmarshal(data, &forms); err != nil {
			return err
		}
		*t = Plural(forms...)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Singular(s)
	return nil
}

// marshal encodes v without escaping HTML characters.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// documentKey builds the document key of a message.
func documentKey(context, id string) string {
	if context == "" {
		return id
	}
	return context + contextSeparator + id
}

// SplitKey returns the context and id encoded in a document key.
func SplitKey(key string) (context, id string) {
	if ctx, msgid, ok := strings.Cut(key, contextSeparator); ok {
		return ctx, msgid
	}
	return "", key
}

// WriteDocument encodes doc as JSON with four-space indentation, sorted
// keys and non-ASCII characters written literally.
func WriteDocument(w io.Writer, doc Document) error {
	if doc == nil {
		doc = Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(doc)
}

// ReadDocument decodes a document written by WriteDocument or by an
// external translation tool.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// WriteDocumentFile writes doc to path, creating parent directories.
func WriteDocumentFile(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDocument(f, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// ReadDocumentFile reads a document from path.
func ReadDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
