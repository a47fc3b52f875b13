package i18n

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	moMagicLE    = 0x950412de
	moMagicBE    = 0xde120495
	moHeaderSize = 28
)

// validateMO checks the header and the string tables of a compiled catalog
// so that truncated or foreign files are reported instead of read as empty.
func validateMO(data []byte) error {
	if len(data) < moHeaderSize {
		return errors.New("file too short for a MO header")
	}

	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(data) {
	case moMagicLE:
		order = binary.LittleEndian
	case moMagicBE:
		order = binary.BigEndian
	default:
		return errors.New("bad magic number")
	}

	if rev := order.Uint32(data[4:]) >> 16; rev > 1 {
		return fmt.Errorf("unsupported major revision %d", rev)
	}

	count := uint64(order.Uint32(data[8:]))
	size := uint64(len(data))
	for _, tableOffset := range []uint64{uint64(order.Uint32(data[12:])), uint64(order.Uint32(data[16:]))} {
		if tableOffset+count*8 > size {
			return errors.New("string table out of bounds")
		}
		for i := range count {
			entry := tableOffset + i*8
			length := uint64(order.Uint32(data[entry:]))
			offset := uint64(order.Uint32(data[entry+4:]))
			if offset+length > size {
				return fmt.Errorf("string %d out of bounds", i)
			}
		}
	}
	return nil
}

var poKeywords = []string{"msgctxt", "msgid_plural", "msgid", "msgstr"}

// validatePO performs a line-level syntax check of a PO file: every line is
// blank, a comment, a keyword followed by a quoted string, or a quoted
// continuation. gotext itself accepts anything, so this is what tells a
// corrupt file apart from an empty one.
func validatePO(data []byte) error {
	if !utf8.Valid(data) {
		return errors.New("not valid UTF-8")
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	var (
		lineNo   int
		haveID   bool
		inString bool
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		switch {
		case line == "":
			inString = false
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, `"`):
			if !inString {
				return fmt.Errorf("line %d: string without keyword", lineNo)
			}
			if _, err := strconv.Unquote(line); err != nil {
				return fmt.Errorf("line %d: bad quoted string", lineNo)
			}
			continue
		}

		keyword, rest := splitPOKeyword(line)
		if keyword == "" {
			return fmt.Errorf("line %d: unexpected %q", lineNo, truncate(line, 20))
		}
		if _, err := strconv.Unquote(strings.TrimSpace(rest)); err != nil {
			return fmt.Errorf("line %d: %s expects a quoted string", lineNo, keyword)
		}

		switch keyword {
		case "msgctxt":
			haveID = false
		case "msgid":
			haveID = true
		default:
			if !haveID {
				return fmt.Errorf("line %d: %s before msgid", lineNo, keyword)
			}
		}
		inString = true
	}
	return scanner.Err()
}

// splitPOKeyword returns the keyword that starts line (msgstr[N] included)
// and the remainder, or an empty keyword when the line starts with none.
func splitPOKeyword(line string) (string, string) {
	if strings.HasPrefix(line, "msgstr[") {
		end := strings.IndexByte(line, ']')
		if end < 0 {
			return "", line
		}
		if _, err := pluralIndex(line[len("msgstr["):end]); err != nil {
			return "", line
		}
		return line[:end+1], line[end+1:]
	}
	for _, kw := range poKeywords {
		if rest, ok := strings.CutPrefix(line, kw); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
			return kw, rest
		}
	}
	return "", line
}

// pluralIndex parses the N of msgstr[N]. No language uses more than
// MaxPluralForms forms.
func pluralIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n >= MaxPluralForms {
		return 0, fmt.Errorf("plural index %d out of range", n)
	}
	return n, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
