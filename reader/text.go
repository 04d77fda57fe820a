package reader

import (
	"math"

	"github.com/tsawler/rubrica/contentstream"
)

// matrix is a PDF transformation matrix in [a b c d e f] order.
type matrix [6]float64

func identityMatrix() matrix {
	return matrix{1, 0, 0, 1, 0, 0}
}

func translation(tx, ty float64) matrix {
	return matrix{1, 0, 0, 1, tx, ty}
}

// mul composes m followed by n, so a point is transformed by m first.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// span is a single positioned run of shown text, before line assembly.
type span struct {
	text  string
	x     float64
	y     float64
	width float64
	size  float64
	font  fontInfo
}

// textState replays the text and transform operators of one content
// stream and collects the spans they draw.
type textState struct {
	fonts map[string]fontInfo

	ctm   matrix
	stack []matrix

	tm     matrix
	tlm    matrix
	inText bool

	font        fontInfo
	size        float64
	leading     float64
	charSpacing float64
	wordSpacing float64
	hscale      float64

	spans []span
}

func newTextState(fonts map[string]fontInfo) *textState {
	return &textState{
		fonts:  fonts,
		ctm:    identityMatrix(),
		tm:     identityMatrix(),
		tlm:    identityMatrix(),
		hscale: 1,
	}
}

func (s *textState) process(ops []contentstream.Operation) []span {
	for _, op := range ops {
		s.apply(op)
	}
	return s.spans
}

func (s *textState) apply(op contentstream.Operation) {
	switch op.Operator {
	case "q":
		s.stack = append(s.stack, s.ctm)
	case "Q":
		if n := len(s.stack); n > 0 {
			s.ctm = s.stack[n-1]
			s.stack = s.stack[:n-1]
		}
	case "cm":
		if m, ok := operandMatrix(op.Operands); ok {
			s.ctm = m.mul(s.ctm)
		}
	case "BT":
		s.inText = true
		s.tm = identityMatrix()
		s.tlm = s.tm
	case "ET":
		s.inText = false
	case "Tf":
		if len(op.Operands) == 2 {
			if name, ok := op.Operands[0].(contentstream.Name); ok {
				s.font = s.fonts[string(name)]
			}
			if v, ok := contentstream.AsNumber(op.Operands[1]); ok {
				s.size = v
			}
		}
	case "TL":
		if v, ok := operandNumber(op.Operands, 0); ok {
			s.leading = v
		}
	case "Tc":
		if v, ok := operandNumber(op.Operands, 0); ok {
			s.charSpacing = v
		}
	case "Tw":
		if v, ok := operandNumber(op.Operands, 0); ok {
			s.wordSpacing = v
		}
	case "Tz":
		if v, ok := operandNumber(op.Operands, 0); ok {
			s.hscale = v / 100
		}
	case "Td":
		if tx, ty, ok := operandPair(op.Operands); ok {
			s.nextLine(tx, ty)
		}
	case "TD":
		if tx, ty, ok := operandPair(op.Operands); ok {
			s.leading = -ty
			s.nextLine(tx, ty)
		}
	case "Tm":
		if m, ok := operandMatrix(op.Operands); ok {
			s.tlm = m
			s.tm = m
		}
	case "T*":
		s.nextLine(0, -s.leading)
	case "Tj":
		if len(op.Operands) == 1 {
			s.showOperand(op.Operands[0])
		}
	case "'":
		if len(op.Operands) == 1 {
			s.nextLine(0, -s.leading)
			s.showOperand(op.Operands[0])
		}
	case "\"":
		if len(op.Operands) == 3 {
			if v, ok := contentstream.AsNumber(op.Operands[0]); ok {
				s.wordSpacing = v
			}
			if v, ok := contentstream.AsNumber(op.Operands[1]); ok {
				s.charSpacing = v
			}
			s.nextLine(0, -s.leading)
			s.showOperand(op.Operands[2])
		}
	case "TJ":
		if len(op.Operands) != 1 {
			return
		}
		arr, ok := op.Operands[0].(contentstream.Array)
		if !ok {
			return
		}
		for _, el := range arr {
			switch v := el.(type) {
			case contentstream.String:
				s.show(string(v))
			case contentstream.Number:
				// Kerning adjustment in thousandths of text space.
				s.advance(-float64(v) / 1000 * s.size * s.hscale)
			}
		}
	}
}

// nextLine moves the line matrix by (tx, ty) and resets the text
// matrix to it.
func (s *textState) nextLine(tx, ty float64) {
	s.tlm = translation(tx, ty).mul(s.tlm)
	s.tm = s.tlm
}

// advance shifts the text matrix horizontally by tx in text space.
func (s *textState) advance(tx float64) {
	s.tm = translation(tx, 0).mul(s.tm)
}

func (s *textState) showOperand(o contentstream.Object) {
	if str, ok := o.(contentstream.String); ok {
		s.show(string(str))
	}
}

// show decodes one show-text string, records a span at the current
// rendering position and advances the text matrix past it.
func (s *textState) show(raw string) {
	if !s.inText || s.size <= 0 || raw == "" {
		return
	}

	text := decodeString(raw, s.font)

	trm := s.tm.mul(s.ctm)
	// Transformed unit vectors give the effective scale in device space.
	sx := math.Hypot(trm[0], trm[1])
	sy := math.Hypot(trm[2], trm[3])

	adv := s.advanceWidth(text)
	if text != "" {
		s.spans = append(s.spans, span{
			text:  text,
			x:     trm[4],
			y:     trm[5],
			width: adv * sx,
			size:  s.size * sy,
			font:  s.font,
		})
	}
	s.advance(adv)
}

// advanceWidth estimates the text-space advance of a run. Glyph
// metrics are not consulted; half the font size per rune is the usual
// estimate for proportional faces.
func (s *textState) advanceWidth(text string) float64 {
	var w float64
	for _, r := range text {
		w += 0.5 * s.size
		w += s.charSpacing
		if r == ' ' {
			w += s.wordSpacing
		}
	}
	return w * s.hscale
}

func operandNumber(ops []contentstream.Object, i int) (float64, bool) {
	if i >= len(ops) {
		return 0, false
	}
	return contentstream.AsNumber(ops[i])
}

func operandPair(ops []contentstream.Object) (float64, float64, bool) {
	if len(ops) != 2 {
		return 0, 0, false
	}
	tx, ok1 := contentstream.AsNumber(ops[0])
	ty, ok2 := contentstream.AsNumber(ops[1])
	return tx, ty, ok1 && ok2
}

func operandMatrix(ops []contentstream.Object) (matrix, bool) {
	if len(ops) != 6 {
		return matrix{}, false
	}
	var m matrix
	for i, o := range ops {
		v, ok := contentstream.AsNumber(o)
		if !ok {
			return matrix{}, false
		}
		m[i] = v
	}
	return m, true
}
