package qstage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"triorng-core/influence"
)

func TestSimSeedDeterministic(t *testing.T) {
	inf := influence.Params{Phase: []bool{true, false}}
	assert.Equal(t, SimSeed(42, "qiskit", inf), SimSeed(42, "qiskit", inf))
}

func TestSimSeedSeparatesStageTags(t *testing.T) {
	inf := influence.Params{}
	assert.NotEqual(t, SimSeed(42, "qiskit", inf), SimSeed(42, "cirq", inf),
		"both quantum stages would consume identical draw streams")
}

func TestSimSeedSeparatesUserSeeds(t *testing.T) {
	inf := influence.Params{}
	assert.NotEqual(t, SimSeed(1, "qiskit", inf), SimSeed(2, "qiskit", inf))
}

// The influence encoding is part of the derivation; a stage's draw stream
// depends on its circuit structure.
func TestSimSeedSensitiveToInfluence(t *testing.T) {
	identity := influence.Params{}
	influenced := influence.Params{Phase: []bool{true}}
	assert.NotEqual(t, SimSeed(42, "qiskit", identity), SimSeed(42, "qiskit", influenced))
}
