package grammar

import "strings"

func (e *Expression) String() string {
	var b strings.Builder
	b.WriteString(e.Left.String())
	for _, op := range e.Right {
		b.WriteString(" " + op.Operator + " " + op.Term.String())
	}
	return b.String()
}

func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(t.Left.String())
	for _, op := range t.Right {
		b.WriteString(" " + op.Operator + " " + op.Unary.String())
	}
	return b.String()
}

func (u *Unary) String() string {
	return strings.Join(u.Prefix, "") + u.Primary.String() + strings.Join(u.Postfix, "")
}

func (p *Primary) String() string {
	switch {
	case p.Integer != nil:
		return *p.Integer
	case p.Str != nil:
		return *p.Str
	case p.Group != nil:
		return "(" + p.Group.String() + ")"
	}
	return ""
}
