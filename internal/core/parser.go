package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lockstep/internal/types"
)

// line is one structural line of lock text with its indentation already
// measured. Blank and comment lines never become lines.
type line struct {
	no     int
	indent int
	text   string
}

// lockParser carries the indentation discipline of one parse run. The
// indentation character is fixed by the first indented structural line
// and the unit width by the first parent/child step; both are enforced
// for the rest of the file.
type lockParser struct {
	lines      []line
	pos        int
	indentChar byte
	unit       int
}

// ParseLock parses lock-file text into an ordered nested mapping. Nil
// input is the absent-input failure; empty input yields an empty
// mapping. Grammar violations return a types.Failure carrying one of
// the parse condition codes and the offending line.
func ParseLock(data []byte) (*Mapping, error) {
	if data == nil {
		return nil, usageFailure(types.FailureAbsentInput, "lock text is required")
	}
	parser := &lockParser{}
	if err := parser.scanLines(string(data)); err != nil {
		return nil, err
	}
	return parser.parseBlock(0)
}

// scanLines splits raw text into structural lines, dropping blanks and
// comments before any indentation accounting so they can never affect
// the consistency checks. Carriage returns are stripped to accept CRLF
// input.
func (p *lockParser) scanLines(text string) error {
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		indent := 0
		for indent < len(raw) && (raw[indent] == ' ' || raw[indent] == '\t') {
			indent++
		}
		content := raw[indent:]
		if content == "" || content[0] == '#' {
			continue
		}
		no := i + 1
		if err := p.checkIndentRun(no, raw[:indent]); err != nil {
			return err
		}
		p.lines = append(p.lines, line{no: no, indent: indent, text: content})
	}
	return nil
}

// checkIndentRun enforces a single indentation character per file. The
// first indented structural line fixes the character for all later
// lines.
func (p *lockParser) checkIndentRun(no int, run string) error {
	for i := 0; i < len(run); i++ {
		if p.indentChar == 0 {
			p.indentChar = run[i]
		}
		if run[i] != p.indentChar {
			return parseFailure(types.FailureMixedIndent, no, "mixed indentation characters")
		}
	}
	return nil
}

// parseBlock consumes the run of entries sitting at exactly indent. A
// shallower line ends the block and is left for the enclosing call; a
// deeper line here means the previous entry was a leaf, because openers
// consume their children before returning.
func (p *lockParser) parseBlock(indent int) (*Mapping, error) {
	block := NewMapping()
	for p.pos < len(p.lines) {
		current := p.lines[p.pos]
		if current.indent < indent {
			break
		}
		if current.indent > indent {
			return nil, parseFailure(types.FailureUnexpectedIndent, current.no, "unexpected indentation without an open block")
		}
		key, body, err := splitKeyLine(current)
		if err != nil {
			return nil, err
		}
		p.pos++
		if strings.TrimSpace(body) == "" {
			child, err := p.parseChild(current, key)
			if err != nil {
				return nil, err
			}
			block.Set(key, child)
			continue
		}
		block.Set(key, CoerceScalar(body))
	}
	return block, nil
}

// parseChild parses the nested block opened by a value-less key line.
// The opener must be followed by a line exactly one unit deeper; a
// shallower or equal line, end of input, or nothing but comments in
// between all mean the promised block never arrived.
func (p *lockParser) parseChild(opener line, key string) (*Mapping, error) {
	if p.pos >= len(p.lines) {
		return nil, parseFailure(types.FailureMissingProperty, opener.no, fmt.Sprintf("missing nested property under key %q", key))
	}
	next := p.lines[p.pos]
	if next.indent <= opener.indent {
		return nil, parseFailure(types.FailureMissingProperty, opener.no, fmt.Sprintf("missing nested property under key %q", key))
	}
	step := next.indent - opener.indent
	if p.unit == 0 {
		p.unit = step
	}
	if step != p.unit {
		return nil, parseFailure(types.FailureIndentStep, next.no, fmt.Sprintf("inconsistent indentation step of %d", step))
	}
	return p.parseBlock(next.indent)
}

// splitKeyLine splits one structural line into its key and raw body.
// The key runs to the first colon outside a double-quoted span, so
// quoted keys may embed spaces, commas, and colons. The quotes stay in
// the key: the request grammar strips them per token later, which keeps
// a quoted multi-constraint key from being split apart here.
func splitKeyLine(current line) (string, string, error) {
	text := current.text
	inQuote := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			inQuote = !inQuote
		case ':':
			if !inQuote {
				return strings.TrimSpace(text[:i]), text[i+1:], nil
			}
		}
	}
	return "", "", parseFailure(types.FailureMissingValue, current.no, fmt.Sprintf("missing value for key %q", strings.TrimSpace(text)))
}

// parseFailure builds one coded grammar violation pinned to a source
// line.
func parseFailure(code types.FailureCode, no int, msg string) error {
	return types.Failure{
		Code: code,
		Line: no,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s (line %d)", msg, no)),
	}
}

func usageFailure(code types.FailureCode, msg string) error {
	return types.Failure{
		Code: code,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(msg),
	}
}
