package rangesql

import (
	"fmt"
	"strings"
)

// The functions below build PostgreSQL range/multirange SQL expressions
// as plain strings. They have no runtime behavior of their own — no
// driver, no query execution — callers splice the result into whatever
// query they're building.

func Contains(lhs, rhs string) string { return binop(lhs, "@>", rhs) }
func ContainedBy(lhs, rhs string) string { return binop(lhs, "<@", rhs) }
func OverlapsExpr(lhs, rhs string) string { return binop(lhs, "&&", rhs) }
func StrictlyLeft(lhs, rhs string) string { return binop(lhs, "<<", rhs) }
func StrictlyRight(lhs, rhs string) string { return binop(lhs, ">>", rhs) }
func NoExtendRight(lhs, rhs string) string { return binop(lhs, "&<", rhs) }
func NoExtendLeft(lhs, rhs string) string { return binop(lhs, "&>", rhs) }
func AdjacentExpr(lhs, rhs string) string { return binop(lhs, "-|-", rhs) }
func Union(lhs, rhs string) string { return binop(lhs, "+", rhs) }
func IntersectionExpr(lhs, rhs string) string { return binop(lhs, "*", rhs) }
func DifferenceExpr(lhs, rhs string) string { return binop(lhs, "-", rhs) }

func Lower(expr string) string { return call("LOWER", expr) }
func Upper(expr string) string { return call("UPPER", expr) }
func IsEmpty(expr string) string { return call("ISEMPTY", expr) }
func LowerInc(expr string) string { return call("LOWER_INC", expr) }
func UpperInc(expr string) string { return call("UPPER_INC", expr) }
func LowerInf(expr string) string { return call("LOWER_INF", expr) }
func UpperInf(expr string) string { return call("UPPER_INF", expr) }
func Unnest(expr string) string { return call("UNNEST", expr) }

func RangeMerge(lhs, rhs string) string { return call("RANGE_MERGE", lhs, rhs) }

func MultirangeExpr(exprs ...string) string {
	return call("MULTIRANGE", exprs...)
}

func binop(lhs, op, rhs string) string {
	return fmt.Sprintf("(%s %s %s)", lhs, op, rhs)
}

func call(fn string, args ...string) string {
	return fmt.Sprintf("%s(%s)", fn, strings.Join(args, ", "))
}
