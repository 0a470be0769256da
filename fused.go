// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import (
	"code.hybscloud.com/kont"
)

// NextBind allocates a serial and passes it to f.
// Fuses Perform(Next{}) + Bind.
func NextBind[B any](f func(Serial) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Next{}), f)
}

// TakeBind consumes the handler's serial and passes it to f.
// Fuses Perform(Take{}) + Bind.
func TakeBind[B any](f func(Serial) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Take{}), f)
}

// Stamp allocates a serial and pairs it with v.
func Stamp[T any](v T) kont.Eff[Stamped[T]] {
	return NextBind(func(s Serial) kont.Eff[Stamped[T]] {
		return kont.Pure(Stamped[T]{Serial: s, Value: v})
	})
}

// Pre-allocated erased operation and frame to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprNext        kont.Erased = Next{}
)

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

func nextBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Serial) kont.Expr[B])
	result := f(current.(Serial))
	return kont.Erased(result.Value), result.Frame
}

// ExprNextBind allocates a serial and passes it to f.
// Fuses ExprPerform(Next{}) + ExprBind.
func ExprNextBind[B any](f func(Serial) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = nextBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprNext
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprNextThen allocates a serial, discards it and continues with next.
// Fuses ExprPerform(Next{}) + ExprThen.
func ExprNextThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprNext
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}
