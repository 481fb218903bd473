package formats

import "strings"

// Token is one grid entry of a level definition: an optional attached
// marker, a kind code and a rotation.
type Token struct {
	Attached bool
	Code     byte
	Rotation int
}

// Kind codes accepted in level files.
const (
	CodeBorder = 'X'
	CodeEmpty  = '.'
	CodeRed    = 'R'
	CodeGreen  = 'G'
	CodeBlue   = 'B'
	CodeYellow = 'Y'
	CodeLine   = 'L'
	CodeFork   = 'F'
	CodeCross  = 'C'
	CodeTurn   = 'T'
	CodeOver   = 'O'
)

func validCode(c byte) bool {
	return strings.IndexByte("X.RGBYLFCTO", c) >= 0
}

// IsSource reports whether the token is a colored source.
func (t Token) IsSource() bool {
	switch t.Code {
	case CodeRed, CodeGreen, CodeBlue, CodeYellow:
		return true
	}
	return false
}

// String formats the token back into level-file form.
func (t Token) String() string {
	var sb strings.Builder
	if t.Attached {
		sb.WriteByte('*')
	}
	sb.WriteByte(t.Code)
	if t.Code != CodeBorder {
		sb.WriteByte(byte('0' + t.Rotation))
	}
	return sb.String()
}

// ParseToken parses a single token such as "*L1", "R2", "." or "X".
// The returned FormatError has no line number; callers add it.
func ParseToken(s string) (Token, error) {
	var t Token
	if strings.HasPrefix(s, "*") {
		t.Attached = true
		s = s[1:]
	}
	switch len(s) {
	case 0:
		return Token{}, formatErr(0, CodeBadToken, "empty token")
	case 1, 2:
	default:
		return Token{}, formatErr(0, CodeBadToken, "token %q too long", s)
	}

	t.Code = s[0]
	if !validCode(t.Code) {
		return Token{}, formatErr(0, CodeUnknownKind, "unknown kind %q", t.Code)
	}
	if len(s) == 2 {
		d := s[1]
		if d < '0' || d > '3' {
			return Token{}, formatErr(0, CodeBadRotation, "rotation %q not in 0-3", d)
		}
		t.Rotation = int(d - '0')
	}
	if t.Code == CodeBorder && t.Attached {
		return Token{}, formatErr(0, CodeBadToken, "border cannot be attached")
	}
	return t, nil
}
