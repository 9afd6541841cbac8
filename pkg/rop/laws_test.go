package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func genEither(t *rapid.T, label string) Either[string, int] {
	if rapid.Bool().Draw(t, label+"_ok") {
		return Succeed[string](rapid.Int().Draw(t, label+"_success"))
	}
	return Fail[int](rapid.String().Draw(t, label+"_failure"))
}

// genStep draws a total function int -> Either[string, int] that fails on a
// drawn residue class and otherwise adds a drawn offset.
func genStep(t *rapid.T, label string) func(int) Either[string, int] {
	mod := rapid.IntRange(1, 7).Draw(t, label+"_mod")
	failOn := rapid.IntRange(0, 6).Draw(t, label+"_fail_on")
	offset := rapid.IntRange(-100, 100).Draw(t, label+"_offset")
	return func(n int) Either[string, int] {
		if ((n%mod)+mod)%mod == failOn {
			return Fail[int](label)
		}
		return Succeed[string](n + offset)
	}
}

func TestLaw_LeftIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		f := genStep(t, "f")
		assert.Equal(t, f(v), Bind(Succeed[string](v), f))
	})
}

func TestLaw_RightIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := genEither(t, "r")
		assert.Equal(t, r, Bind(r, Succeed[string, int]))
	})
}

func TestLaw_Associativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := genEither(t, "r")
		f := genStep(t, "f")
		g := genStep(t, "g")

		left := Bind(Bind(r, f), g)
		right := Bind(r, func(v int) Either[string, int] { return Bind(f(v), g) })
		assert.Equal(t, left, right)
	})
}

func TestLaw_MapIsBindSucceed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := genEither(t, "r")
		k := rapid.IntRange(-10, 10).Draw(t, "k")
		f := func(n int) int { return n * k }

		viaBind := Bind(r, func(v int) Either[string, int] { return Succeed[string](f(v)) })
		assert.Equal(t, viaBind, Map(r, f))
	})
}

func TestLaw_AtMostOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := genEither(t, "r")
		want := 0
		if r.IsSuccess() {
			want = 1
		}

		binds := 0
		Bind(r, func(v int) Either[string, int] {
			binds++
			return Succeed[string](v)
		})
		maps := 0
		Map(r, func(v int) int {
			maps++
			return v
		})

		assert.Equal(t, want, binds)
		assert.Equal(t, want, maps)
	})
}

func TestLaw_ShortCircuit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "steps")
		failAt := rapid.IntRange(0, n-1).Draw(t, "fail_at")
		reason := rapid.String().Draw(t, "reason")

		invoked := make([]bool, n)
		r := Succeed[string](0)
		for i := 0; i < n; i++ {
			i := i
			r = Bind(r, func(v int) Either[string, int] {
				invoked[i] = true
				if i == failAt {
					return Fail[int](reason)
				}
				return Succeed[string](v + 1)
			})
		}

		assert.Equal(t, Fail[int](reason), r)
		for i := range invoked {
			assert.Equal(t, i <= failAt, invoked[i], "step %d", i)
		}
	})
}
