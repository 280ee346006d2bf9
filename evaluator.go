package jsonschema

import (
	"context"
	"strconv"
)

// Mode selects how the evaluator handles a decisive result: Fast stops as
// soon as the overall verdict cannot change, Exhaustive always visits every
// step so every diagnostic is produced.
type Mode uint8

const (
	ModeFast Mode = iota
	ModeExhaustive
)

// Callback receives one diagnostic event per evaluated step, in execution
// order: whether the step passed, the step itself, the schema-side and
// instance-side locations it ran at, the instance value it read, and the
// annotation value it carried (only non-zero for AnnotationPublic/Private).
// evaluatePath is the step's own SchemaLocation: the schema-side pointer
// the compiler recorded when it emitted the step.
type Callback func(result bool, step *Step, evaluatePath, instanceLocation Pointer, value Value, annotation Value)

// Evaluator interprets a compiled Template against JSON instances. A single
// Evaluator is immutable after construction and safe to use concurrently
// across many goroutines and instances; all mutable state for one call
// lives in the evalState built fresh by Evaluate.
type Evaluator struct {
	// RecursionLimit bounds ControlJump recursion depth (the "unroll once,
	// then jump" cycle case). Zero means the default of 10000.
	RecursionLimit int
}

// NewEvaluator builds an Evaluator with the default recursion limit.
func NewEvaluator() *Evaluator {
	return &Evaluator{RecursionLimit: defaultRecursionLimit}
}

const defaultRecursionLimit = 10000

// annotationKey identifies one (keyword, sibling scope, property basename)
// slot in the annotation bag: properties/patternProperties record presence
// here, additionalProperties' InternalNoAnnotation steps query it.
type annotationKey struct {
	keyword string
	scope   string
	base    string
}

// evalState carries everything one Evaluate call mutates: the annotation
// bag, the label table used to resolve ControlJump, the current recursion
// depth, the cancellation context, and the first error encountered.
type evalState struct {
	ctx         context.Context
	mode        Mode
	callback    Callback
	annotations map[annotationKey]bool
	labels      map[uint64]*Step
	depth       int
	limit       int
	err         error
}

// Evaluate runs template against instance, invoking callback for every step
// that actually executes. It returns the overall verdict and, if the
// cancellation context fired or recursion exceeded the limit, the error
// that aborted evaluation. A non-nil error always accompanies a false
// result, and the callback stops firing the moment it occurs.
func (e *Evaluator) Evaluate(ctx context.Context, template Template, instance Value, mode Mode, callback Callback) (bool, error) {
	limit := e.RecursionLimit
	if limit <= 0 {
		limit = defaultRecursionLimit
	}
	s := &evalState{
		ctx:         ctx,
		mode:        mode,
		callback:    callback,
		annotations: make(map[annotationKey]bool),
		labels:      make(map[uint64]*Step),
		limit:       limit,
	}
	result := s.eval(template, EmptyPointer, instance, true)
	if s.err != nil {
		return false, s.err
	}
	return result, nil
}

// cancelled reports whether the context was cancelled, latching the error
// on first observation so every later eval() call short-circuits.
func (s *evalState) cancelled() bool {
	if s.err != nil {
		return true
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		s.err = ErrEvaluationCancelled
		return true
	}
	return false
}

// eval executes step at instanceLocation against value, per §4.H's three-step
// algorithm: check the gating condition, rebind the target, then run the
// step's own kind. When emit is false, no callback fires for step or
// anything beneath it — the silent path used to evaluate gating Conditions.
func (s *evalState) eval(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	if s.cancelled() {
		return false
	}

	// Per-element kinds interpret their own Condition specially (evaluated
	// once per loop element, at that element's rebound location) rather
	// than as the generic once-only step gate every other kind uses.
	if step.Kind != StepLoopProperties && step.Condition != nil {
		if !s.eval(step.Condition, instanceLocation, value, false) {
			return true
		}
	}

	switch step.Kind {
	case StepAnd, StepInternalContainer:
		if step.Kind == StepInternalContainer && step.Descend {
			return s.evalDescend(step, instanceLocation, value, emit)
		}
		return s.evalAnd(step, instanceLocation, value, emit)
	case StepOr:
		return s.evalOr(step, instanceLocation, value, emit)
	case StepXor:
		return s.evalXor(step, instanceLocation, value, emit)
	case StepNot:
		return s.evalNot(step, instanceLocation, value, emit)
	case StepLoopItems:
		return s.evalLoopItems(step, instanceLocation, value, emit)
	case StepLoopProperties:
		return s.evalLoopProperties(step, instanceLocation, value, emit)
	case StepAnnotationPublic, StepAnnotationPrivate:
		return s.evalAnnotation(step, instanceLocation, value, emit)
	case StepInternalNoAnnotation:
		return s.evalNoAnnotationFor(step.Keyword, instanceLocation)
	case StepControlLabel:
		return s.evalControlLabel(step, instanceLocation, value, emit)
	case StepControlJump:
		return s.evalControlJump(step, instanceLocation, value, emit)
	default:
		result := s.assert(step, instanceLocation, value)
		if emit {
			s.report(step, result, instanceLocation, value, Value{})
		}
		return result
	}
}

// report invokes the callback, using the step's own SchemaLocation as the
// evaluate_path the spec's diagnostic signature names.
func (s *evalState) report(step *Step, result bool, instanceLocation Pointer, value, annotation Value) {
	if s.callback != nil && s.err == nil {
		s.callback(result, step, step.SchemaLocation, instanceLocation, value, annotation)
	}
}

// evalAnd runs every child in order, ANDing their results. Fast mode stops
// at the first false: nothing past that point can change the verdict.
// Synthetic grouping wrappers (Keyword == "") never emit their own event;
// only their named children do.
func (s *evalState) evalAnd(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	overall := true
	for _, child := range step.Children {
		if s.cancelled() {
			return false
		}
		if !s.eval(child, instanceLocation, value, emit) {
			overall = false
			if s.mode == ModeFast {
				break
			}
		}
	}
	if emit && step.Keyword != "" {
		s.report(step, overall, instanceLocation, value, Value{})
	}
	return overall
}

// evalOr runs every child, ORing their results. Fast mode stops at the
// first true. Each branch's annotations are snapshotted beforehand and
// restored if the branch fails, so a failing branch never leaves private
// annotations visible to its siblings or to the parent scope.
func (s *evalState) evalOr(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	overall := false
	for _, child := range step.Children {
		if s.cancelled() {
			return false
		}
		if s.mode == ModeFast && overall {
			break
		}
		snapshot := s.snapshotAnnotations()
		if s.eval(child, instanceLocation, value, emit) {
			overall = true
		} else {
			s.restoreAnnotations(snapshot)
		}
	}
	if emit {
		s.report(step, overall, instanceLocation, value, Value{})
	}
	return overall
}

// evalXor requires exactly one child to hold. Fast mode stops as soon as a
// second true is seen: two matches already makes the verdict decisively
// false, same as oneOf failing for over-matching. As in evalOr, a failing
// branch's annotations are rolled back before the next branch runs.
func (s *evalState) evalXor(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	count := 0
	for _, child := range step.Children {
		if s.cancelled() {
			return false
		}
		snapshot := s.snapshotAnnotations()
		if s.eval(child, instanceLocation, value, emit) {
			count++
		} else {
			s.restoreAnnotations(snapshot)
		}
		if s.mode == ModeFast && count >= 2 {
			break
		}
	}
	overall := count == 1
	if emit {
		s.report(step, overall, instanceLocation, value, Value{})
	}
	return overall
}

// evalNot always discards its child's annotations: a negated subschema's
// annotations are never meaningful to the parent scope, regardless of
// whether the negated subschema itself passed or failed.
func (s *evalState) evalNot(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	snapshot := s.snapshotAnnotations()
	inner := s.eval(step.Children[0], instanceLocation, value, emit)
	s.restoreAnnotations(snapshot)
	overall := !inner
	if emit {
		s.report(step, overall, instanceLocation, value, Value{})
	}
	return overall
}

// snapshotAnnotations copies the current annotation bag so a combinator
// branch can be rolled back to it if the branch turns out not to
// contribute to the final verdict.
func (s *evalState) snapshotAnnotations() map[annotationKey]bool {
	snapshot := make(map[annotationKey]bool, len(s.annotations))
	for k, v := range s.annotations {
		snapshot[k] = v
	}
	return snapshot
}

// restoreAnnotations replaces the current annotation bag with a prior
// snapshot, discarding anything recorded since.
func (s *evalState) restoreAnnotations(snapshot map[annotationKey]bool) {
	s.annotations = snapshot
}

// evalDescend pushes instanceLocation by the container's Key or Start index
// before evaluating its single child, then restores it. Missing children
// (an out-of-range index, a key that vanished) can't happen here: every
// descend container is itself gated by a Defines/SizeGreater condition
// that already verified the child exists.
func (s *evalState) evalDescend(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	var childLocation Pointer
	var childValue Value
	var ok bool
	if step.DescendIndex {
		childLocation = instanceLocation.AppendIndex(step.Start)
		childValue, ok = value.Index(step.Start)
	} else {
		childLocation = instanceLocation.AppendKey(step.Key)
		childValue, ok = value.At(step.Key)
	}
	if !ok {
		return true
	}
	return s.eval(step.Children[0], childLocation, childValue, emit)
}

// evalLoopItems runs the body against every array element from Start
// onward, ANDing the results. Non-arrays are vacuously true; the enclosing
// container already gates on type==array.
func (s *evalState) evalLoopItems(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	if value.Kind() != KindArray {
		return true
	}
	overall := true
	items := value.Array()
	for i := step.Start; i < len(items); i++ {
		if s.cancelled() {
			return false
		}
		loc := instanceLocation.AppendIndex(i)
		if !s.eval(step.Children[0], loc, items[i], emit) {
			overall = false
			if s.mode == ModeFast {
				break
			}
		}
	}
	if emit {
		s.report(step, overall, instanceLocation, value, Value{})
	}
	return overall
}

// evalLoopProperties runs the body against every object property whose
// rebound target satisfies the loop's own Condition, evaluated per
// property rather than once for the whole step (patternProperties' regex
// match, additionalProperties' no-annotation check). Non-objects are
// vacuously true; the enclosing container already gates on type==object.
func (s *evalState) evalLoopProperties(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	if value.Kind() != KindObject {
		return true
	}
	overall := true
	for _, key := range value.Keys() {
		if s.cancelled() {
			return false
		}
		loc := instanceLocation.AppendKey(key)
		elem, _ := value.At(key)
		if step.Condition != nil && !s.eval(step.Condition, loc, elem, false) {
			continue
		}
		if !s.eval(step.Children[0], loc, elem, emit) {
			overall = false
			if s.mode == ModeFast {
				break
			}
		}
	}
	if emit {
		s.report(step, overall, instanceLocation, value, Value{})
	}
	return overall
}

// basename returns the string form of instanceLocation's final token: an
// object key verbatim, an array index stringified.
func basename(loc Pointer) string {
	tok, ok := loc.Last()
	if !ok {
		return ""
	}
	if tok.IsIndex {
		return strconv.Itoa(tok.Index)
	}
	return tok.Key
}

// evalAnnotation records a private annotation (read back by
// InternalNoAnnotation at the same sibling scope) and always reports the
// step as passing: annotating never fails validation.
func (s *evalState) evalAnnotation(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	annotation := step.Value
	if step.Kind == StepAnnotationPrivate {
		base := step.Key
		if step.Target == TargetInstanceBasename {
			base = basename(instanceLocation)
			annotation = NewString(base)
		}
		key := annotationKey{keyword: step.Keyword, scope: instanceLocation.Parent().String(), base: base}
		s.annotations[key] = true
	}
	if emit {
		s.report(step, true, instanceLocation, value, annotation)
	}
	return true
}

// evalNoAnnotationFor reports whether the current property's basename has
// NOT been annotated under keyword at the parent scope; never itself
// emitted as a diagnostic since it only ever appears inside a Condition.
func (s *evalState) evalNoAnnotationFor(keyword string, instanceLocation Pointer) bool {
	key := annotationKey{keyword: keyword, scope: instanceLocation.Parent().String(), base: basename(instanceLocation)}
	return !s.annotations[key]
}

// evalControlLabel registers its body under Label before evaluating it, so
// a ControlJump reached anywhere within the body (the recursive case) or
// anywhere later in the evaluation (a second $ref to the same destination)
// can resolve it. The entry is never removed: later siblings may still
// need it, and the label space is bounded by the template's own size.
func (s *evalState) evalControlLabel(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	s.labels[step.Label] = step.Children[0]
	result := s.eval(step.Children[0], instanceLocation, value, emit)
	if emit {
		s.report(step, result, instanceLocation, value, Value{})
	}
	return result
}

// evalControlJump resolves Label against the labels registered so far and
// recurses into that body, tracking depth against the configured limit.
func (s *evalState) evalControlJump(step *Step, instanceLocation Pointer, value Value, emit bool) bool {
	body, ok := s.labels[step.Label]
	if !ok {
		s.err = ErrUnknownLabel
		return false
	}
	s.depth++
	if s.depth > s.limit {
		s.err = ErrRecursionLimit
		s.depth--
		return false
	}
	result := s.eval(body, instanceLocation, value, emit)
	s.depth--
	if emit {
		s.report(step, result, instanceLocation, value, Value{})
	}
	return result
}
