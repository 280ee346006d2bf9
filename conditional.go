package jsonschema

// compileIfThenElse compiles `if`/`then`/`else` (supplemental: not part of
// the exemplary keyword list but present in every mainstream dialect since
// Draft 7). `if` never asserts on its own; it only selects a branch, so
// both branches gate on it via Condition rather than splicing it in as an
// emitting child: Condition is always evaluated silently (see eval's
// emit=false Condition check), which keeps `if`'s own internal assertions
// out of the diagnostic stream the way the original's dedicated container
// does. The compiled form is a conjunction of (if ? then : true) and
// (!if ? else : true) — exactly one side is live for any instance, the
// skipped side counts as true, and a missing then/else leaves that side
// vacuously true.
func (ctx *compileCtx) compileIfThenElse(pointer Pointer, schema Value) (*Step, error) {
	ifVal, ok := schema.At("if")
	if !ok {
		return nil, nil
	}
	ifPointer := pointer.AppendKey("if")
	ifStep, err := ctx.applicate(ifPointer, ifVal)
	if err != nil {
		return nil, err
	}

	thenBranch := and(pointer, "")
	if thenVal, ok := schema.At("then"); ok {
		thenPointer := pointer.AppendKey("then")
		thenStep, err := ctx.applicate(thenPointer, thenVal)
		if err != nil {
			return nil, err
		}
		thenBranch = thenStep
	}

	elseBranch := and(pointer, "")
	if elseVal, ok := schema.At("else"); ok {
		elsePointer := pointer.AppendKey("else")
		elseStep, err := ctx.applicate(elsePointer, elseVal)
		if err != nil {
			return nil, err
		}
		elseBranch = elseStep
	}

	positive := gate(ifStep, thenBranch)
	negative := gate(not(pointer, "", ifStep), elseBranch)
	return and(pointer, "if", positive, negative), nil
}
