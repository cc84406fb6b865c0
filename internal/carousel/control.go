package carousel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedControl is returned by ParseControl for unknown tokens.
var ErrMalformedControl = errors.New("malformed control")

type controlKind int

const (
	controlIndex controlKind = iota + 1
	controlRelative
	controlNext
	controlPrev
	controlPage
	controlPageFromEnd
	controlFirst
	controlLast
)

// Control is a parsed navigation request.
type Control struct {
	kind controlKind
	n    int
}

// Navigation controls that take no argument.
var (
	Next  = Control{kind: controlNext}
	Prev  = Control{kind: controlPrev}
	First = Control{kind: controlFirst}
	Last  = Control{kind: controlLast}
)

// To targets slide index i. Loop sliders accept any integer.
func To(i int) Control {
	return Control{kind: controlIndex, n: i}
}

// By moves by n slides relative to the active index.
func By(n int) Control {
	return Control{kind: controlRelative, n: n}
}

// Page targets page p counted from the first page.
func Page(p int) Control {
	return Control{kind: controlPage, n: p}
}

// PageFromEnd targets page p counted back from the last page.
func PageFromEnd(p int) Control {
	return Control{kind: controlPageFromEnd, n: p}
}

// ParseControl reads the token grammar used by Go:
//
//	"3"       slide 3
//	"+2" "-1" relative step (a bare "+" or "-" steps by 1)
//	">" "<"   next / previous page
//	">2"      page 2
//	"<1"      page 1 counted from the last page
//	">>" "<<" first / last page
func ParseControl(token string) (Control, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return Control{}, fmt.Errorf("%w: empty", ErrMalformedControl)
	}
	switch s {
	case ">":
		return Next, nil
	case "<":
		return Prev, nil
	case ">>":
		return First, nil
	case "<<":
		return Last, nil
	case "+":
		return By(1), nil
	case "-":
		return By(-1), nil
	}

	head, rest := s[0], s[1:]
	switch head {
	case '+', '-':
		n, err := parseCount(rest)
		if err != nil {
			return Control{}, fmt.Errorf("%w: %q", ErrMalformedControl, token)
		}
		if head == '-' {
			n = -n
		}
		return By(n), nil
	case '>', '<':
		n, err := parseCount(rest)
		if err != nil {
			return Control{}, fmt.Errorf("%w: %q", ErrMalformedControl, token)
		}
		if head == '<' {
			return PageFromEnd(n), nil
		}
		return Page(n), nil
	}

	n, err := parseCount(s)
	if err != nil {
		return Control{}, fmt.Errorf("%w: %q", ErrMalformedControl, token)
	}
	return To(n), nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, ErrMalformedControl
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrMalformedControl
		}
	}
	return strconv.Atoi(s)
}

func (c Control) String() string {
	switch c.kind {
	case controlIndex:
		return strconv.Itoa(c.n)
	case controlRelative:
		if c.n < 0 {
			return strconv.Itoa(c.n)
		}
		return "+" + strconv.Itoa(c.n)
	case controlNext:
		return ">"
	case controlPrev:
		return "<"
	case controlPage:
		return ">" + strconv.Itoa(c.n)
	case controlPageFromEnd:
		return "<" + strconv.Itoa(c.n)
	case controlFirst:
		return ">>"
	case controlLast:
		return "<<"
	default:
		return "invalid"
	}
}
