package treepatch

import (
	"github.com/treepatch/go-treepatch/ir"
)

// preserveFields is the final reconstruction state: a lock-step walk
// of the reconstructed tree against the base tree that re-establishes
// the base key ordering and restores always-preserved fields.
//
// At each object level the result takes the base's keys in their
// original order: shared keys recurse, keys missing from the
// reconstruction come back from the base when always-preserved and
// stay removed otherwise. Newly added keys follow, in reconstruction
// order. Sequences walk pairwise by index; the longer side's tail is
// carried as is. Scalars pass through.
func preserveFields(recon, base *ir.Node, preserved []string) *ir.Node {
	if recon == nil {
		return nil
	}
	if base == nil || recon.Type != base.Type {
		return recon
	}
	switch recon.Type {
	case ir.ObjectType:
		res := ir.NewObject()
		for i, key := range base.Fields {
			if isPreserved(key, preserved) {
				// preserved fields always come back from the
				// base, even when a record targeted them
				res.SetField(key, base.Values[i].Clone())
				continue
			}
			rv := ir.Get(recon, key)
			if rv != nil {
				res.SetField(key, preserveFields(rv, base.Values[i], preserved))
				continue
			}
			// otherwise the key was legitimately removed
		}
		for i, key := range recon.Fields {
			if base.FieldIndex(key) == -1 {
				res.SetField(key, recon.Values[i])
			}
		}
		return res
	case ir.ArrayType:
		n := min(len(recon.Values), len(base.Values))
		res := make([]*ir.Node, 0, len(recon.Values))
		for i := 0; i < n; i++ {
			res = append(res, preserveFields(recon.Values[i], base.Values[i], preserved))
		}
		res = append(res, recon.Values[n:]...)
		return ir.FromSlice(res)
	default:
		return recon
	}
}

func isPreserved(key string, preserved []string) bool {
	for _, p := range preserved {
		if p == key {
			return true
		}
	}
	return false
}
