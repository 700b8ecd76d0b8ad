package heredity

import (
	"fmt"
	"math"
	"os"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

// modelFile is the YAML shape for alternate model constants:
//
//	mutation_rate: 0.01
//	gene_prior: [0.96, 0.03, 0.01]
//	trait_given_gene: [0.01, 0.56, 0.65]
//
// trait_given_gene[g] is P(trait | g copies); the complement is implied.
type modelFile struct {
	MutationRate   *float64  `yaml:"mutation_rate"`
	GenePrior      []float64 `yaml:"gene_prior"`
	TraitGivenGene []float64 `yaml:"trait_given_gene"`
}

// OpenModel loads model constants from a YAML file, falling back to the
// default value for any omitted field. Distributions are checked for
// well-formedness so a typo fails loudly instead of skewing posteriors.
func OpenModel(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var file modelFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, pfx.Err(err)
	}

	m := DefaultModel()

	if file.MutationRate != nil {
		if *file.MutationRate < 0 || *file.MutationRate > 1 {
			return nil, pfx.Err(fmt.Errorf("mutation_rate %v is not a probability", *file.MutationRate))
		}
		m.MutationRate = *file.MutationRate
	}

	if file.GenePrior != nil {
		if len(file.GenePrior) != 3 {
			return nil, pfx.Err(fmt.Errorf("gene_prior must list 3 probabilities, got %d", len(file.GenePrior)))
		}
		sum := 0.0
		for g, p := range file.GenePrior {
			if p < 0 || p > 1 {
				return nil, pfx.Err(fmt.Errorf("gene_prior[%d] = %v is not a probability", g, p))
			}
			m.GenePrior[g] = p
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			return nil, pfx.Err(fmt.Errorf("gene_prior sums to %v; expected 1", sum))
		}
	}

	if file.TraitGivenGene != nil {
		if len(file.TraitGivenGene) != 3 {
			return nil, pfx.Err(fmt.Errorf("trait_given_gene must list 3 probabilities, got %d", len(file.TraitGivenGene)))
		}
		for g, p := range file.TraitGivenGene {
			if p < 0 || p > 1 {
				return nil, pfx.Err(fmt.Errorf("trait_given_gene[%d] = %v is not a probability", g, p))
			}
			m.TraitProb[g][TraitIndex(true)] = p
			m.TraitProb[g][TraitIndex(false)] = 1 - p
		}
	}

	return m, nil
}
