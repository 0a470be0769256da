// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import (
	"code.hybscloud.com/kont"
)

// serialDispatcher is the structural interface for serial operations.
// DispatchSerial never blocks and never fails.
type serialDispatcher interface {
	DispatchSerial(s *Serial) kont.Resumed
}

// Next is the effect operation for allocating a serial.
// Perform(Next{}) resumes with the handler's current serial and increases it.
type Next struct {
	kont.Phantom[Serial]
}

// DispatchSerial handles Next against the handler's serial.
func (Next) DispatchSerial(s *Serial) kont.Resumed {
	return s.GetIncrease()
}

// Current is the effect operation for reading the handler's serial
// without changing it.
type Current struct {
	kont.Phantom[Serial]
}

// DispatchSerial handles Current against the handler's serial.
func (Current) DispatchSerial(s *Serial) kont.Resumed {
	return *s
}

// Take is the effect operation for consuming the handler's serial.
// Perform(Take{}) resumes with the current serial and leaves NaN behind,
// after which every Next resumes with NaN.
type Take struct {
	kont.Phantom[Serial]
}

// DispatchSerial handles Take against the handler's serial.
func (Take) DispatchSerial(s *Serial) kont.Resumed {
	return s.Take()
}

// serialHandler implements kont.Handler for serial effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type serialHandler struct {
	s *Serial
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h serialHandler) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(serialDispatcher)
	if !ok {
		panic("serial: unhandled effect in serialHandler")
	}
	return sop.DispatchSerial(h.s), true
}

// Exec runs a Cont-world computation, dispatching serial effects
// against s. On return s holds the state left by the computation.
func Exec[R any](s *Serial, eff kont.Eff[R]) R {
	return kont.Handle(eff, serialHandler{s: s})
}

// ExecExpr runs an Expr-world computation, dispatching serial effects
// against s.
func ExecExpr[R any](s *Serial, eff kont.Expr[R]) R {
	return kont.HandleExpr(eff, serialHandler{s: s})
}

// Step evaluates a computation until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](eff kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(eff)
}

// Advance dispatches the suspended serial operation against s and
// resumes the computation to its next suspension or completion.
func Advance[R any](s *Serial, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	sop, ok := susp.Op().(serialDispatcher)
	if !ok {
		panic("serial: unhandled effect in Advance")
	}
	return susp.Resume(sop.DispatchSerial(s))
}
