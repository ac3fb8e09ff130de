package natives

import (
	"math"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

func registerNumber(natives vm.Natives) {
	fqn := ast.NumberFQN

	binary := func(name string, op func(a, b float64) float64) {
		natives[key(fqn+"."+name, 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
			a, err := numberArg(e, self)
			if err != nil {
				return err
			}
			b, err := numberArg(e, args[0])
			if err != nil {
				return err
			}
			pushNumber(e, op(a, b))
			return nil
		}
	}
	compare := func(name string, op func(a, b float64) bool) {
		natives[key(fqn+"."+name, 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
			a, err := numberArg(e, self)
			if err != nil {
				return err
			}
			b, err := numberArg(e, args[0])
			if err != nil {
				return err
			}
			pushBool(e, op(a, b))
			return nil
		}
	}

	binary("+", func(a, b float64) float64 { return a + b })
	binary("-", func(a, b float64) float64 { return a - b })
	binary("*", func(a, b float64) float64 { return a * b })
	binary("/", func(a, b float64) float64 { return a / b })
	binary("%", func(a, b float64) float64 { return math.Mod(a, b) })

	compare(">", func(a, b float64) bool { return a > b })
	compare("<", func(a, b float64) bool { return a < b })
	compare(">=", func(a, b float64) bool { return a >= b })
	compare("<=", func(a, b float64) bool { return a <= b })
	compare("==", func(a, b float64) bool { return a == b })

	natives[key(fqn+".negated", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		n, err := numberArg(e, self)
		if err != nil {
			return err
		}
		pushNumber(e, -n)
		return nil
	}
	natives[key(fqn+".abs", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		n, err := numberArg(e, self)
		if err != nil {
			return err
		}
		pushNumber(e, math.Abs(n))
		return nil
	}
	natives[key(fqn+".toString", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		n, err := numberArg(e, self)
		if err != nil {
			return err
		}
		pushString(e, formatNumber(n))
		return nil
	}
}

// formatNumber renders a Number the way printString would: integral
// values drop their trailing ".0" (§9, "Numbers" rendering rule).
func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return itoa(int64(n))
	}
	return trimTrailingZeros(n)
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func trimTrailingZeros(n float64) string {
	s := formatFixed4(n)
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

// formatFixed4 renders n with exactly 4 decimal digits, matching the
// rounding-to-4-places the heap already applies at allocation time.
func formatFixed4(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	scaled := int64(math.Round(n * 10000))
	whole := scaled / 10000
	frac := scaled % 10000
	out := itoa(whole) + "." + zeroPad4(frac)
	if neg {
		out = "-" + out
	}
	return out
}

func zeroPad4(n int64) string {
	s := itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
