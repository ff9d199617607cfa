// Package driver orchestrates a single compose run: it owns link-cycle
// prevention, threads a logger through the walk, and wires the
// resolver and merger together behind one entry point. Serializing the
// merged model is left to the caller (emit.Write).
package driver

import (
	"github.com/sirupsen/logrus"

	"github.com/arolek/stepfuse/internal/assembly"
	"github.com/arolek/stepfuse/internal/entity"
	"github.com/arolek/stepfuse/internal/merge"
	"github.com/arolek/stepfuse/internal/metrics"
	"github.com/arolek/stepfuse/internal/part21"
)

// Compose walks tree depth-first, resolving and absorbing every linked
// STEP file through resolve, and returns the merged model along with
// any non-fatal warnings the merge raised. A nil log defaults to
// logrus.StandardLogger(), matching pgraph's CreateParser nil-default
// idiom.
func Compose(tree *assembly.Tree, resolve LinkResolver, meta entity.FileMetadata, log *logrus.Logger) (*entity.Model, []merge.Warning, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	mg := merge.New()
	inflight := make(map[string]bool)
	absorbedEntities, placements := 0, 0

	resolveModel := func(link string) (*entity.Model, error) {
		if inflight[link] {
			return nil, LinkError{Kind: "Cycle", Link: link, Message: "link already being resolved along this path"}
		}
		inflight[link] = true
		defer delete(inflight, link)

		r, err := resolve(link)
		if err != nil {
			return nil, LinkError{Kind: "Resolve", Link: link, Message: err.Error()}
		}
		defer r.Close()

		m, err := part21.Parse(r, link)
		if err != nil {
			return nil, err
		}

		absorbedEntities += len(m.Data)
		placements++
		log.WithField("link", link).Info("absorbed linked file")
		return m, nil
	}

	if err := mg.BuildAssembly(tree, resolveModel); err != nil {
		return nil, nil, err
	}

	mg.Finalize(meta)

	for _, w := range mg.Warnings {
		log.WithField("warning_kind", w.Kind).Warn(w.Message)
	}

	metrics.Observe(absorbedEntities, int(mg.Model.NextFreeID)-1, placements, len(mg.Warnings), len(tree.Nodes))

	return mg.Model, mg.Warnings, nil
}
