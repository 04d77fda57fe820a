package contentstream

import (
	"bytes"
	"fmt"
	"strconv"
)

// Operation is a single content stream operation: an operator plus the
// operands that preceded it in the stream.
type Operation struct {
	Operator string
	Operands []Object
}

// Parser parses PDF content streams into a sequence of operations.
type Parser struct {
	data  []byte
	pos   int
	ops   []Operation
	stack []Object // operands accumulated since the last operator
}

// NewParser creates a content stream parser for the given decoded data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the content stream and returns all operations in order.
func (p *Parser) Parse() ([]Operation, error) {
	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			break
		}
		if err := p.parseNext(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

// parseNext parses the next token: an operand is pushed onto the stack, an
// operator consumes the stack into an Operation.
func (p *Parser) parseNext() error {
	start := p.pos

	c := p.data[p.pos]

	// Comments run to end of line.
	if c == '%' {
		p.skipComment()
		return nil
	}

	// Operators start with a letter, an apostrophe, or a quote.
	if isLetter(c) || c == '\'' || c == '"' {
		return p.parseOperator()
	}

	operand, err := p.parseOperand()
	if err != nil {
		return fmt.Errorf("at offset %d: %w", start, err)
	}
	p.stack = append(p.stack, operand)
	return nil
}

// parseOperator reads an operator name and emits an Operation with the
// accumulated operand stack.
func (p *Parser) parseOperator() error {
	start := p.pos

	var op bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isLetter(c) || c == '\'' || c == '"' || c == '*' || (c >= '0' && c <= '9') {
			op.WriteByte(c)
			p.pos++
		} else {
			break
		}
	}

	operator := op.String()
	if operator == "" {
		return fmt.Errorf("empty operator at offset %d", start)
	}

	// The boolean and null keywords are operands, not operators.
	switch operator {
	case "true":
		p.stack = append(p.stack, Bool(true))
		return nil
	case "false":
		p.stack = append(p.stack, Bool(false))
		return nil
	case "null":
		p.stack = append(p.stack, Null{})
		return nil
	}

	operation := Operation{
		Operator: operator,
		Operands: make([]Object, len(p.stack)),
	}
	copy(operation.Operands, p.stack)
	p.ops = append(p.ops, operation)
	p.stack = p.stack[:0]

	// Inline image data (BI ... ID <bytes> EI) is opaque binary; skip to
	// the closing EI so the tokenizer does not trip over raster bytes.
	if operator == "ID" {
		p.skipInlineImage()
	}

	return nil
}

// parseOperand parses a single operand: number, string, name, array, dict.
func (p *Parser) parseOperand() (Object, error) {
	p.skipWhitespace()

	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	c := p.data[p.pos]

	switch {
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '/':
		return p.parseName()
	case c == '[':
		return p.parseArray()
	case c == '<':
		if p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
			return p.parseDict()
		}
		return p.parseHexString()
	case c == 't' || c == 'f' || c == 'n':
		// Keyword operands inside arrays and dictionaries.
		end := p.pos
		for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
			end++
		}
		switch string(p.data[p.pos:end]) {
		case "true":
			p.pos = end
			return Bool(true), nil
		case "false":
			p.pos = end
			return Bool(false), nil
		case "null":
			p.pos = end
			return Null{}, nil
		}
	}

	return nil, fmt.Errorf("unexpected character %q", c)
}

// parseNumber parses an integer or real operand into a Number.
func (p *Parser) parseNumber() (Object, error) {
	start := p.pos

	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
		} else {
			break
		}
	}

	numStr := string(p.data[start:p.pos])
	val, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", numStr, err)
	}
	return Number(val), nil
}

// parseString parses a literal string (...) resolving escape sequences,
// octal codes, line continuations, and balanced nested parentheses.
func (p *Parser) parseString() (Object, error) {
	p.pos++ // skip '('

	var result bytes.Buffer
	depth := 1

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]

		switch {
		case c == '\\' && p.pos+1 < len(p.data):
			p.pos++
			next := p.data[p.pos]
			switch next {
			case 'n':
				result.WriteByte('\n')
				p.pos++
			case 'r':
				result.WriteByte('\r')
				p.pos++
			case 't':
				result.WriteByte('\t')
				p.pos++
			case 'b':
				result.WriteByte('\b')
				p.pos++
			case 'f':
				result.WriteByte('\f')
				p.pos++
			case '(', ')', '\\':
				result.WriteByte(next)
				p.pos++
			case '\r':
				// Line continuation, swallow an optional LF too.
				p.pos++
				if p.pos < len(p.data) && p.data[p.pos] == '\n' {
					p.pos++
				}
			case '\n':
				p.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				// Octal escape, one to three digits.
				val := int(next - '0')
				p.pos++
				for i := 0; i < 2 && p.pos < len(p.data); i++ {
					d := p.data[p.pos]
					if d < '0' || d > '7' {
						break
					}
					val = val*8 + int(d-'0')
					p.pos++
				}
				result.WriteByte(byte(val & 0xFF))
			default:
				// Unknown escape: the backslash is ignored.
				result.WriteByte(next)
				p.pos++
			}
		case c == '(':
			depth++
			result.WriteByte(c)
			p.pos++
		case c == ')':
			depth--
			if depth > 0 {
				result.WriteByte(c)
			}
			p.pos++
		default:
			result.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unclosed string")
	}
	return String(result.String()), nil
}

// parseHexString parses a hex string <...> into its decoded bytes. An odd
// trailing digit is padded with zero.
func (p *Parser) parseHexString() (Object, error) {
	p.pos++ // skip '<'

	var digits []byte
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '>' {
			p.pos++
			break
		}
		if isWhitespace(c) {
			p.pos++
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		digits = append(digits, c)
		p.pos++
	}

	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	var result bytes.Buffer
	for i := 0; i+1 < len(digits); i += 2 {
		result.WriteByte(hexValue(digits[i])<<4 | hexValue(digits[i+1]))
	}
	return String(result.String()), nil
}

// parseName parses a name /Name with # escape handling. The leading slash is
// not part of the value.
func (p *Parser) parseName() (Object, error) {
	p.pos++ // skip '/'

	var result bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) && isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			result.WriteByte(hexValue(p.data[p.pos+1])<<4 | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		result.WriteByte(c)
		p.pos++
	}
	return Name(result.String()), nil
}

// parseArray parses an array [...] of operands.
func (p *Parser) parseArray() (Object, error) {
	p.pos++ // skip '['

	var arr Array
	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			break
		}
		obj, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
	return arr, nil
}

// parseDict parses a dictionary <<...>>.
func (p *Parser) parseDict() (Object, error) {
	p.pos += 2 // skip '<<'

	dict := make(Dict)
	for p.pos < len(p.data) {
		p.skipWhitespace()
		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			break
		}
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}

		key, err := p.parseName()
		if err != nil {
			return nil, err
		}

		value, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		dict[string(key.(Name))] = value
	}
	return dict, nil
}

// skipInlineImage advances past inline image data to just beyond the EI
// operator.
func (p *Parser) skipInlineImage() {
	for p.pos+1 < len(p.data) {
		if p.data[p.pos] == 'E' && p.data[p.pos+1] == 'I' {
			prevOK := p.pos == 0 || isWhitespace(p.data[p.pos-1])
			nextOK := p.pos+2 >= len(p.data) || isWhitespace(p.data[p.pos+2])
			if prevOK && nextOK {
				p.pos += 2
				return
			}
		}
		p.pos++
	}
	p.pos = len(p.data)
}

// skipComment advances past a % comment to the end of the line.
func (p *Parser) skipComment() {
	for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
		p.pos++
	}
}

// skipWhitespace advances past PDF whitespace characters.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

// Helper functions

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDelimiter reports whether c is a PDF delimiter character.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
