package jsonschema

// compileRef compiles $ref, $dynamicRef, and $recursiveRef. A label id is
// derived from the reference's destination hash; the first occurrence of a
// destination emits a ControlLabel wrapping the compiled destination
// subschema (unrolling any cycle exactly once), every subsequent occurrence
// emits a bare ControlJump, per the design note on recursion through
// references.
func (ctx *compileCtx) compileRef(pointer Pointer, kw string, val Value) (*Step, error) {
	if val.Kind() != KindString {
		return nil, nil
	}

	kind := ReferenceStatic
	switch kw {
	case "$dynamicRef":
		kind = ReferenceDynamic
	case "$recursiveRef":
		kind = ReferenceRecursive
	}

	dest, _, err := ctx.refDestination(pointer, kind, val.String())
	if err != nil {
		return nil, err
	}

	label := labelID(dest)
	if ctx.labels[label] {
		return &Step{Kind: StepControlJump, Label: label, SchemaLocation: pointer, Keyword: kw}, nil
	}
	ctx.labels[label] = true

	target, ok := ctx.frame.Lookup(kind, dest)
	if !ok {
		return nil, refUnresolvedError(dest)
	}

	destSchema, ok := target.Pointer.Get(target.Root)
	if !ok {
		return nil, refUnresolvedError(dest)
	}

	body, err := ctx.applicate(target.Pointer, destSchema)
	if err != nil {
		return nil, err
	}

	return &Step{
		Kind:           StepControlLabel,
		Label:          label,
		Children:       []*Step{body},
		SchemaLocation: pointer,
		Keyword:        kw,
	}, nil
}
