// Package output renders generation reports as text or JSON and owns the
// conversion from domain results to the stable wire schema.
package output

import (
	"triorng-core/bitstring"
	"triorng-core/cascade"

	"triorng/pkg/api"
)

// ToReport converts a cascade run to the stable wire schema (v1).
// Stage records are attached only when includeStages is set (verbose runs);
// the final Binary/Hex/Decimal triple is always present.
func ToReport(bits int, stages []cascade.Stage, seed *int64, final bitstring.BitString, results []cascade.Result, includeStages bool) api.ReportV1 {
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.String())
	}
	r := api.ReportV1{
		Bits:    bits,
		Cascade: names,
		Seed:    seed,
		Binary:  final.String(),
		Hex:     final.Hex(),
		Decimal: final.Decimal(),
	}
	if includeStages {
		for _, res := range results {
			r.Stages = append(r.Stages, api.StageV1{
				Name:   res.Stage.String(),
				Binary: res.Bits.String(),
				Hex:    res.Hex,
			})
		}
	}
	return r
}
