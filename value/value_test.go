/*
File    : loxy/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCallable struct {
	name     string
	arity    int
	isNative bool
}

func (s stubCallable) Arity() int     { return s.arity }
func (s stubCallable) Name() string   { return s.name }
func (s stubCallable) IsNative() bool { return s.isNative }

func TestTruthy(t *testing.T) {
	assert.False(t, NilValue.Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.True(t, Number(0).Truthy())
	assert.True(t, String("").Truthy())
}

func TestEqual_DistinguishesVariants(t *testing.T) {
	assert.False(t, Equal(Number(1), Bool(true)))
	assert.False(t, Equal(Number(1), String("1")))
	assert.True(t, Equal(NilValue, NilValue))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
}

func TestEqual_IsReflexiveAndSymmetric(t *testing.T) {
	a, b := String("x"), String("x")
	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
}

func TestString_IntegralNumberHasNoDecimalPoint(t *testing.T) {
	assert.Equal(t, "3", Number(3).String())
	assert.Equal(t, "3.5", Number(3.5).String())
}

func TestString_NilAndBool(t *testing.T) {
	assert.Equal(t, "nil", NilValue.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
}

func TestString_DivisionByZeroValuesLowercase(t *testing.T) {
	assert.Equal(t, "inf", Number(math.Inf(1)).String())
	assert.Equal(t, "-inf", Number(math.Inf(-1)).String())
	assert.Equal(t, "nan", Number(math.NaN()).String())
}

func TestString_Callable(t *testing.T) {
	assert.Equal(t, "<native fn>", Call(stubCallable{name: "clock", isNative: true}).String())
	assert.Equal(t, "<fn add>", Call(stubCallable{name: "add"}).String())
}
