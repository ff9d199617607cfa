package merge

import (
	"fmt"

	"github.com/arolek/stepfuse/internal/assembly"
	"github.com/arolek/stepfuse/internal/entity"
)

// LinkResolver turns a link string into a parsed STEP model. It is
// supplied by the driver (spec.md §4.6), which owns cycle prevention;
// the merger just calls it once per linked leaf it walks into.
type LinkResolver func(link string) (*entity.Model, error)

// BuildAssembly walks tree depth-first in child order, synthesizing a
// PRODUCT / PRODUCT_DEFINITION_FORMATION / PRODUCT_DEFINITION triple
// per node, an assembly usage occurrence per non-root node, a
// PROPERTY_DEFINITION (+ representation) per metadata pair, and —
// for nodes with a Link — absorbing the linked file and attaching its
// geometry root under the node's Transform. It returns an
// entity.RefError if the merged model is left with a dangling Ref.
func (mg *Merger) BuildAssembly(tree *assembly.Tree, resolve LinkResolver) error {
	if err := assembly.Validate(tree); err != nil {
		return err
	}

	appCtx := mg.insert(entity.ApplicationContext("automotive_design"))
	pdCtx := mg.insert(entity.ProductDefinitionContext("design", appCtx, "design"))
	rootRepresentation := mg.insert(entity.ShapeRepresentation("assembly", nil, pdCtx))

	var walk func(idx int, parentDefinition entity.ID, parentRepresentation entity.ID) error
	walk = func(idx int, parentDefinition, parentRepresentation entity.ID) error {
		node := tree.Nodes[idx]
		label := node.Label
		if label == "" {
			label = fmt.Sprintf("node_%d", idx)
		}

		productID := mg.insert(entity.Product(label, label, "", pdCtx))
		formationID := mg.insert(entity.ProductDefinitionFormation(label, "", productID))
		definitionID := mg.insert(entity.ProductDefinition(label, "", formationID, pdCtx))

		if idx != tree.Root {
			mg.insert(entity.NextAssemblyUsageOccurrence(
				label, label, "", parentDefinition, definitionID))
		}

		representation := parentRepresentation
		if node.Link != "" {
			src, err := resolve(node.Link)
			if err != nil {
				return err
			}

			ids := mg.Absorb(src)
			geometryRoot := mg.IdentifyGeometryRoot(ids, src)

			xf := identityTransform
			if node.Transform != nil {
				xf = *node.Transform
			}
			representation = mg.AttachGeometryUnderTransform(geometryRoot, parentRepresentation, xf)
		}

		for _, kv := range node.Metadata {
			mg.attachMetadata(definitionID, pdCtx, kv)
		}

		for _, child := range node.Children {
			if err := walk(child, definitionID, representation); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(tree.Root, 0, rootRepresentation); err != nil {
		return err
	}
	return mg.Model.CheckReferentialClosure()
}

func (mg *Merger) attachMetadata(definitionID, context entity.ID, kv assembly.KV) {
	itemID := mg.insert(entity.DescriptiveRepresentationItem(kv.Key, kv.Value))
	repID := mg.insert(entity.ShapeRepresentation(kv.Key, []entity.ID{itemID}, context))
	propertyID := mg.insert(entity.PropertyDefinition(kv.Key, kv.Value, definitionID))
	mg.insert(entity.PropertyDefinitionRepresentation(propertyID, repID))
}
