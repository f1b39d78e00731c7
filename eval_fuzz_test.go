//go:build go1.18
// +build go1.18

package evaluator_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/evaluator"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2")
	f.Add("-(2+3)^2")
	f.Add("2^-.5*(1")
	f.Add("1$2")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := evaluator.EvalString(s)
		if err == nil {
			return
		}
		var ie evaluator.InputError
		if !errors.As(err, &ie) {
			t.Errorf("%q gave non-input error %#v", s, err)
		}
	})
}
