// Copyright The FeltVM Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package binfile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/feltvm/go-feltvm/pkg/hints"
	"github.com/feltvm/go-feltvm/pkg/util/felt"
)

// ParseReferenceValue parses the textual form in which compiled programs
// record a symbolic reference, for example:
//
//	cast(fp + (-4), felt*)        address fp-4
//	[cast(fp + (-4), felt*)]      contents of the cell at fp-4
//	cast([ap + 2] + 3, felt)      cell at ap+2, dereferenced, plus 3
//	cast([ap] + [fp + (-3)], felt)
//	cast(42, felt)                immediate value
//
// The surrounding brackets set the dereference flag; inside the cast, the
// expression is a primary offset optionally followed by "+" and a secondary
// offset.  The trailing type is not retained.
func ParseReferenceValue(value string) (hints.HintReference, error) {
	var (
		ref hints.HintReference
		str = strings.TrimSpace(value)
	)
	//
	if strings.HasPrefix(str, "[") && strings.HasSuffix(str, "]") {
		ref.Dereference = true
		str = str[1 : len(str)-1]
	}
	//
	if !strings.HasPrefix(str, "cast(") || !strings.HasSuffix(str, ")") {
		return ref, fmt.Errorf("malformed reference value %q", value)
	}
	// Strip cast( ... ), then the type after the last comma.
	inner := str[5 : len(str)-1]
	comma := strings.LastIndex(inner, ",")
	//
	if comma < 0 {
		return ref, fmt.Errorf("reference value %q has no type", value)
	}
	//
	parser := &refParser{tokens: lexReference(inner[:comma])}
	//
	first, err := parser.parseAtom()
	//
	if err != nil {
		return ref, fmt.Errorf("malformed reference value %q: %w", value, err)
	}
	//
	if ref.Offset1, err = first.primaryOffset(); err != nil {
		return ref, fmt.Errorf("malformed reference value %q: %w", value, err)
	}
	//
	ref.Offset2 = hints.Literal{}
	// Optional secondary offset
	if parser.match("+") {
		second, err := parser.parseAtom()
		//
		if err != nil {
			return ref, fmt.Errorf("malformed reference value %q: %w", value, err)
		}
		//
		if ref.Offset2, err = second.secondaryOffset(); err != nil {
			return ref, fmt.Errorf("malformed reference value %q: %w", value, err)
		}
	}
	//
	if !parser.done() {
		return ref, fmt.Errorf("trailing tokens in reference value %q", value)
	}
	//
	return ref, nil
}

// atom is one operand of a reference expression: either a register-relative
// offset (with optional dereference) or a bare number.
type atom struct {
	isRegister bool
	register   hints.Register
	offset     int
	deref      bool
	// Decimal text of the number (registers aside), kept as a string since
	// immediates can exceed the native integer range.
	number string
}

// primaryOffset interprets this atom in the first operand position, where a
// bare number is an immediate field element.
func (a atom) primaryOffset() (hints.OffsetValue, error) {
	if a.isRegister {
		return hints.RegisterRef{Register: a.register, Offset: a.offset, Dereference: a.deref}, nil
	}
	//
	element, err := felt.FromString(a.number)
	//
	if err != nil {
		return nil, err
	}
	//
	return hints.Immediate{Value: element}, nil
}

// secondaryOffset interprets this atom in the second operand position, where
// a bare number is a literal offset.
func (a atom) secondaryOffset() (hints.OffsetValue, error) {
	if a.isRegister {
		return hints.RegisterRef{Register: a.register, Offset: a.offset, Dereference: a.deref}, nil
	}
	//
	offset, err := strconv.Atoi(a.number)
	//
	if err != nil {
		return nil, fmt.Errorf("invalid literal offset %q", a.number)
	}
	//
	return hints.Literal{Value: offset}, nil
}

// ============================================================================

// refParser is a recursive descent parser over the (tiny) token stream of a
// reference expression.
type refParser struct {
	tokens []string
	pos    int
}

func (p *refParser) parseAtom() (atom, error) {
	if p.match("[") {
		a, err := p.parseRegisterOffset()
		//
		if err != nil {
			return a, err
		} else if !p.match("]") {
			return a, fmt.Errorf("expected closing bracket")
		}
		//
		a.deref = true
		//
		return a, nil
	}
	//
	switch p.peek() {
	case "ap", "fp":
		return p.parseRegisterOffset()
	}
	// Otherwise, a bare number
	number, err := p.parseNumber()
	//
	return atom{number: number}, err
}

// parseRegisterOffset parses "ap", "fp", "ap + n" or "fp + n", where n may be
// a parenthesised negative.
func (p *refParser) parseRegisterOffset() (atom, error) {
	var a atom
	//
	switch p.next() {
	case "ap":
		a = atom{isRegister: true, register: hints.AP}
	case "fp":
		a = atom{isRegister: true, register: hints.FP}
	default:
		return a, fmt.Errorf("expected register")
	}
	//
	if p.match("+") {
		number, err := p.parseNumber()
		//
		if err != nil {
			return a, err
		}
		//
		if a.offset, err = strconv.Atoi(number); err != nil {
			return a, fmt.Errorf("invalid register offset %q", number)
		}
	}
	//
	return a, nil
}

// parseNumber parses "n", "-n" or "(-n)", returning its decimal text.
func (p *refParser) parseNumber() (string, error) {
	var (
		parens = p.match("(")
		sign   = ""
	)
	//
	if p.match("-") {
		sign = "-"
	}
	//
	digits := p.next()
	//
	if digits == "" || !unicode.IsDigit(rune(digits[0])) {
		return "", fmt.Errorf("expected number")
	}
	//
	if parens && !p.match(")") {
		return "", fmt.Errorf("expected closing parenthesis")
	}
	//
	return sign + digits, nil
}

func (p *refParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	//
	return ""
}

func (p *refParser) next() string {
	token := p.peek()
	p.pos++
	//
	return token
}

// match consumes the next token if (and only if) it equals the one given.
func (p *refParser) match(token string) bool {
	if p.peek() == token {
		p.pos++
		return true
	}
	//
	return false
}

func (p *refParser) done() bool {
	return p.pos >= len(p.tokens)
}

// lexReference splits a reference expression into tokens: identifiers, runs
// of digits and single-character symbols.  Whitespace is skipped.
func lexReference(str string) []string {
	var (
		tokens []string
		runes  = []rune(str)
	)
	//
	for i := 0; i < len(runes); {
		ch := runes[i]
		//
		switch {
		case unicode.IsSpace(ch):
			i++
		case unicode.IsLetter(ch) || ch == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			//
			tokens = append(tokens, string(runes[i:j]))
			i = j
		case unicode.IsDigit(ch):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			//
			tokens = append(tokens, string(runes[i:j]))
			i = j
		default:
			tokens = append(tokens, string(ch))
			i++
		}
	}
	//
	return tokens
}
