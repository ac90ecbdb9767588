package cgen

import (
	"regexp"
	"strings"
)

/* ---------- inferred C types ---------- */

// CType is the closed set of C types the transpiler can infer from the
// surface form of an initializing expression.
type CType int

const (
	CInt CType = iota
	CFloat
	CBool
	CString
	CIntArray
	COpaque // fallback for anything not inferable
)

func (t CType) String() string {
	switch t {
	case CInt:
		return "int"
	case CFloat:
		return "float"
	case CBool:
		return "bool"
	case CString:
		return "char*"
	case CIntArray:
		return "int*"
	default:
		return "void*"
	}
}

var (
	intLitRe   = regexp.MustCompile(`^-?\d+$`)
	floatLitRe = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// inferType classifies the already-lowered textual form of a right-hand
// side. Classification is purely syntactic and never evaluates semantics:
// a computed expression like (x + y) is COpaque even when both operands are
// known ints. That is the contract, not a shortcut.
func inferType(value string) CType {
	value = strings.TrimSpace(value)

	if len(value) >= 2 {
		if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")) {
			return CString
		}
	}
	switch strings.ToLower(value) {
	case "true", "false":
		return CBool
	}
	if intLitRe.MatchString(value) {
		return CInt
	}
	if floatLitRe.MatchString(value) {
		return CFloat
	}
	// array literal: the lowered C form uses braces, the source form brackets
	if len(value) >= 2 {
		if (strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]")) ||
			(strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}")) {
			return CIntArray
		}
	}
	return COpaque
}
