package entity

// Constructors for the product-structure entities the merger
// synthesizes. Each returns a bare Record with ID 0; the caller
// assigns the real id (via Model.Allocate) at insertion time, so these
// stay pure functions of their arguments and are testable without a
// Model in scope.

// CartesianPoint builds CARTESIAN_POINT('', (x, y, z)).
func CartesianPoint(label string, x, y, z float64) Record {
	return Record{Type: "CARTESIAN_POINT", Args: []Value{
		String(label),
		ListVal(Real(x), Real(y), Real(z)),
	}}
}

// Direction builds DIRECTION('', (x, y, z)).
func Direction(label string, x, y, z float64) Record {
	return Record{Type: "DIRECTION", Args: []Value{
		String(label),
		ListVal(Real(x), Real(y), Real(z)),
	}}
}

// Axis2Placement3D builds AXIS2_PLACEMENT_3D('', #origin, #axis, #refDirection).
func Axis2Placement3D(label string, origin, axis, refDirection ID) Record {
	return Record{Type: "AXIS2_PLACEMENT_3D", Args: []Value{
		String(label),
		RefVal(origin),
		RefVal(axis),
		RefVal(refDirection),
	}}
}

// ApplicationContext builds APPLICATION_CONTEXT('application').
func ApplicationContext(application string) Record {
	return Record{Type: "APPLICATION_CONTEXT", Args: []Value{String(application)}}
}

// ProductDefinitionContext builds
// PRODUCT_DEFINITION_CONTEXT('name', #frame, 'stage').
func ProductDefinitionContext(name string, frame ID, stage string) Record {
	return Record{Type: "PRODUCT_DEFINITION_CONTEXT", Args: []Value{
		String(name),
		RefVal(frame),
		String(stage),
	}}
}

// Product builds PRODUCT('id', 'name', 'description', (#frameOfReference)).
func Product(id, name, description string, frameOfReference ID) Record {
	return Record{Type: "PRODUCT", Args: []Value{
		String(id),
		String(name),
		String(description),
		ListVal(RefVal(frameOfReference)),
	}}
}

// ProductDefinitionFormation builds
// PRODUCT_DEFINITION_FORMATION('id', 'description', #product).
func ProductDefinitionFormation(id, description string, product ID) Record {
	return Record{Type: "PRODUCT_DEFINITION_FORMATION", Args: []Value{
		String(id),
		String(description),
		RefVal(product),
	}}
}

// ProductDefinition builds
// PRODUCT_DEFINITION('id', 'description', #formation, #frame).
func ProductDefinition(id, description string, formation, frame ID) Record {
	return Record{Type: "PRODUCT_DEFINITION", Args: []Value{
		String(id),
		String(description),
		RefVal(formation),
		RefVal(frame),
	}}
}

// NextAssemblyUsageOccurrence builds the assembly-linkage entity tying
// a parent product definition to a child (used) product definition.
func NextAssemblyUsageOccurrence(id, name, description string, relating, related ID) Record {
	return Record{Type: "NEXT_ASSEMBLY_USAGE_OCCURRENCE", Args: []Value{
		String(id),
		String(name),
		String(description),
		RefVal(relating),
		RefVal(related),
		Omitted(), // reference_designator
	}}
}

// ItemDefinedTransformation builds
// ITEM_DEFINED_TRANSFORMATION('name', '', #from, #to).
func ItemDefinedTransformation(name string, from, to ID) Record {
	return Record{Type: "ITEM_DEFINED_TRANSFORMATION", Args: []Value{
		String(name),
		String(""),
		RefVal(from),
		RefVal(to),
	}}
}

// RepresentationRelationshipWithTransformation builds the
// context-dependent variant that places one shape representation
// inside another via an ITEM_DEFINED_TRANSFORMATION.
func RepresentationRelationshipWithTransformation(name, description string, rep1, rep2, transformOperator ID) Record {
	return Record{
		Type:    "",
		Complex: true,
		Args: []Value{ListVal(
			Typed("REPRESENTATION_RELATIONSHIP",
				String(name), String(description), RefVal(rep1), RefVal(rep2)),
			Typed("REPRESENTATION_RELATIONSHIP_WITH_TRANSFORMATION",
				RefVal(transformOperator)),
			Typed("SHAPE_REPRESENTATION_RELATIONSHIP"),
		)},
	}
}

// PropertyDefinition builds
// PROPERTY_DEFINITION('name', 'description', #definition).
func PropertyDefinition(name, description string, definition ID) Record {
	return Record{Type: "PROPERTY_DEFINITION", Args: []Value{
		String(name),
		String(description),
		RefVal(definition),
	}}
}

// DescriptiveRepresentationItem builds
// DESCRIPTIVE_REPRESENTATION_ITEM('key', 'value') — the carrier for one
// metadata (key, value) pair.
func DescriptiveRepresentationItem(key, value string) Record {
	return Record{Type: "DESCRIPTIVE_REPRESENTATION_ITEM", Args: []Value{
		String(key),
		String(value),
	}}
}

// ShapeRepresentation builds
// SHAPE_REPRESENTATION('name', (#item, ...), #context).
func ShapeRepresentation(name string, items []ID, context ID) Record {
	list := make([]Value, len(items))
	for i, it := range items {
		list[i] = RefVal(it)
	}
	return Record{Type: "SHAPE_REPRESENTATION", Args: []Value{
		String(name),
		ListVal(list...),
		RefVal(context),
	}}
}

// PropertyDefinitionRepresentation builds
// PROPERTY_DEFINITION_REPRESENTATION(#definition, #representation).
func PropertyDefinitionRepresentation(definition, representation ID) Record {
	return Record{Type: "PROPERTY_DEFINITION_REPRESENTATION", Args: []Value{
		RefVal(definition),
		RefVal(representation),
	}}
}
