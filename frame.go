package jsonschema

import "fmt"

// FrameKey identifies one frame entry: a reference kind paired with the
// document it belongs to and the schema-relative pointer of the location,
// per §3's "Frame entry. Keyed by (ReferenceKind, Pointer)" — Doc
// disambiguates pointers across the root document and any external
// documents pulled in through cross-document `$ref`s.
type FrameKey struct {
	Kind    ReferenceKind
	Doc     int
	Pointer Pointer
}

// FrameEntry is the value side of the frame map.
type FrameEntry struct {
	CanonicalURI  string
	BaseDialect   string
	Dialect       string
	Root          Value
	ParentPointer Pointer
	Pointer       Pointer
	Doc           int
}

// Frame is the output of the Frame Indexer: every reachable schema location
// indexed by canonical URI, anchor, and JSON pointer, plus every static,
// dynamic, and recursive reference discovered along the way. A Frame may
// span more than one document when references cross document boundaries.
type Frame struct {
	Entries       map[FrameKey]*FrameEntry
	StaticURIs    map[string]FrameKey
	DynamicURIs   map[string]FrameKey
	RecursiveURIs map[string]FrameKey
	References    []Reference
	Root          Value
}

// Lookup resolves a reference destination URI against the frame, per the
// reference kind it was declared under.
func (f *Frame) Lookup(kind ReferenceKind, destination string) (*FrameEntry, bool) {
	var table map[string]FrameKey
	switch kind {
	case ReferenceDynamic:
		table = f.DynamicURIs
		if _, ok := table[destination]; !ok {
			// $dynamicRef with no matching $dynamicAnchor anywhere in scope
			// falls back to ordinary static resolution, per 2020-12 semantics
			// for a dynamicRef whose fragment is a plain $anchor name.
			table = f.StaticURIs
		}
	case ReferenceRecursive:
		table = f.RecursiveURIs
		if _, ok := table[destination]; !ok {
			table = f.StaticURIs
		}
	default:
		table = f.StaticURIs
	}
	key, ok := table[destination]
	if !ok {
		return nil, false
	}
	entry, ok := f.Entries[key]
	return entry, ok
}

// frameBuilder accumulates state while walking a root schema document and
// any external documents it references.
type frameBuilder struct {
	frame    *Frame
	resolver SchemaResolver
	walker   SchemaWalker
	nextDoc  int
	seenBase map[string]int
}

// Index walks a root schema, producing its Frame. defaultDialect is used
// when a document declares no `$schema`. References that cross into an
// external document are followed through resolver as the walk discovers
// them.
func Index(root Value, resolver SchemaResolver, walker SchemaWalker, defaultDialect string) (*Frame, error) {
	b := &frameBuilder{
		frame: &Frame{
			Entries:       make(map[FrameKey]*FrameEntry),
			StaticURIs:    make(map[string]FrameKey),
			DynamicURIs:   make(map[string]FrameKey),
			RecursiveURIs: make(map[string]FrameKey),
			Root:          root,
		},
		resolver: resolver,
		walker:   walker,
		seenBase: make(map[string]int),
	}

	dialect, ok := SchemaDialect(root, defaultDialect)
	if !ok {
		return nil, fmt.Errorf("%w", ErrMissingDialect)
	}
	baseDialect, err := BaseDialect(root, resolver, defaultDialect)
	if err != nil {
		return nil, err
	}

	rootDoc := b.nextDoc
	b.nextDoc++
	if err := b.walk(root, root, EmptyPointer, EmptyPointer, "", EmptyPointer, baseDialect, dialect, rootDoc); err != nil {
		return nil, err
	}

	if err := b.resolveExternalReferences(defaultDialect); err != nil {
		return nil, err
	}

	for _, ref := range b.frame.References {
		if _, ok := b.frame.Lookup(ref.Kind, ref.Destination); !ok {
			return nil, fmt.Errorf("%w: %s", ErrReferenceUnresolved, ref.Destination)
		}
	}

	return b.frame, nil
}

// resolveExternalReferences repeatedly fetches and indexes the document
// behind any reference destination not yet covered by an indexed document,
// until no more progress can be made.
func (b *frameBuilder) resolveExternalReferences(defaultDialect string) error {
	for {
		progressed := false
		for _, ref := range b.frame.References {
			if _, ok := b.frame.Lookup(ref.Kind, ref.Destination); ok {
				continue
			}
			uri, err := ParseURI(ref.Destination)
			if err != nil {
				continue
			}
			base := uri.Fragmentless()
			if _, seen := b.seenBase[base]; seen {
				continue
			}
			doc, ok := b.resolver.Resolve(base)
			if !ok {
				continue
			}

			docIdx := b.nextDoc
			b.nextDoc++
			b.seenBase[base] = docIdx

			dialect, ok := SchemaDialect(doc, defaultDialect)
			if !ok {
				dialect = Draft202012
			}
			baseDialect, err := BaseDialect(doc, b.resolver, dialect)
			if err != nil {
				return err
			}
			if err := b.walk(doc, doc, EmptyPointer, EmptyPointer, "", EmptyPointer, baseDialect, dialect, docIdx); err != nil {
				return err
			}
			progressed = true
		}
		if !progressed {
			return nil
		}
	}
}

// walk indexes one schema node. pointer is the node's location relative to
// rootDoc within document doc; baseURI/basePointer track the nearest
// enclosing $id: canonical URIs are baseURI with "#"+relative-pointer-
// since-that-id appended.
func (b *frameBuilder) walk(node, rootDoc Value, pointer, parentPointer Pointer, baseURI string, basePointer Pointer, baseDialect, dialect string, doc int) error {
	if node.Kind() != KindObject && node.Kind() != KindBool {
		return nil
	}

	if node.Kind() == KindObject {
		if schemaVal, ok := node.At("$schema"); ok && schemaVal.Kind() == KindString {
			dialect = schemaVal.String()
			bd, err := BaseDialect(node, b.resolver, dialect)
			if err != nil {
				return err
			}
			baseDialect = bd
		}
	}

	id, err := SchemaID(node, baseDialect, "")
	if err != nil {
		return err
	}
	if id != "" {
		resolved := id
		if baseURI != "" {
			resolved = resolveRelativeURI(baseURI, id)
		}
		baseURI = resolved
		basePointer = pointer
	} else if baseURI == "" {
		baseURI = "#"
	}

	relative := pointer[len(basePointer):]
	canonical := baseURI
	if !relative.Empty() {
		if baseURI == "#" {
			canonical = "#" + relative.String()
		} else {
			canonical = baseURI + "#" + relative.String()
		}
	}

	key := FrameKey{Kind: ReferenceStatic, Doc: doc, Pointer: pointer}
	entry := &FrameEntry{
		CanonicalURI:  canonical,
		BaseDialect:   baseDialect,
		Dialect:       dialect,
		Root:          rootDoc,
		ParentPointer: parentPointer,
		Pointer:       pointer,
		Doc:           doc,
	}
	b.frame.Entries[key] = entry
	b.frame.StaticURIs[canonical] = key

	if node.Kind() != KindObject {
		return nil
	}

	if anchor, ok := node.At("$anchor"); ok && anchor.Kind() == KindString {
		b.frame.StaticURIs[baseURI+"#"+anchor.String()] = key
	}
	if danchor, ok := node.At("$dynamicAnchor"); ok && danchor.Kind() == KindString {
		dkey := FrameKey{Kind: ReferenceDynamic, Doc: doc, Pointer: pointer}
		b.frame.Entries[dkey] = entry
		b.frame.DynamicURIs[baseURI+"#"+danchor.String()] = dkey
	}
	if ranchor, ok := node.At("$recursiveAnchor"); ok && ranchor.Kind() == KindBool && ranchor.Bool() {
		rkey := FrameKey{Kind: ReferenceRecursive, Doc: doc, Pointer: pointer}
		b.frame.Entries[rkey] = entry
		b.frame.RecursiveURIs[canonical] = rkey
	}

	if refVal, ok := node.At("$ref"); ok && refVal.Kind() == KindString {
		dest := resolveRelativeURI(canonical, refVal.String())
		b.frame.References = append(b.frame.References, Reference{Kind: ReferenceStatic, Origin: pointer, Destination: dest})
	}
	if refVal, ok := node.At("$dynamicRef"); ok && refVal.Kind() == KindString {
		dest := resolveRelativeURI(canonical, refVal.String())
		b.frame.References = append(b.frame.References, Reference{Kind: ReferenceDynamic, Origin: pointer, Destination: dest})
	}
	if refVal, ok := node.At("$recursiveRef"); ok && refVal.Kind() == KindString {
		dest := resolveRelativeURI(canonical, refVal.String())
		b.frame.References = append(b.frame.References, Reference{Kind: ReferenceRecursive, Origin: pointer, Destination: dest})
	}

	for _, kw := range node.Keys() {
		class, shape := b.walker.Walk(dialect, kw)
		if class != ClassificationApplicator {
			continue
		}
		val, _ := node.At(kw)
		childPointer := pointer.AppendKey(kw)

		switch shape {
		case ShapeSingle:
			if err := b.walk(val, rootDoc, childPointer, pointer, baseURI, basePointer, baseDialect, dialect, doc); err != nil {
				return err
			}
		case ShapeArrayItems:
			if val.Kind() != KindArray {
				continue
			}
			for i, item := range val.Array() {
				if err := b.walk(item, rootDoc, childPointer.AppendIndex(i), pointer, baseURI, basePointer, baseDialect, dialect, doc); err != nil {
					return err
				}
			}
		case ShapeObjectValues:
			if val.Kind() != KindObject {
				continue
			}
			for _, k := range val.Keys() {
				sub, _ := val.At(k)
				if err := b.walk(sub, rootDoc, childPointer.AppendKey(k), pointer, baseURI, basePointer, baseDialect, dialect, doc); err != nil {
					return err
				}
			}
		case ShapeItemsVariant:
			switch val.Kind() {
			case KindArray:
				for i, item := range val.Array() {
					if err := b.walk(item, rootDoc, childPointer.AppendIndex(i), pointer, baseURI, basePointer, baseDialect, dialect, doc); err != nil {
						return err
					}
				}
			default:
				if err := b.walk(val, rootDoc, childPointer, pointer, baseURI, basePointer, baseDialect, dialect, doc); err != nil {
					return err
				}
			}
		case ShapeDependenciesVariant:
			if val.Kind() != KindObject {
				continue
			}
			for _, k := range val.Keys() {
				sub, _ := val.At(k)
				if sub.Kind() == KindArray {
					continue // array-of-property-names form, not a subschema
				}
				if err := b.walk(sub, rootDoc, childPointer.AppendKey(k), pointer, baseURI, basePointer, baseDialect, dialect, doc); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
