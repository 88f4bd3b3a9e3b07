package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/stocksim/stocksim/sim"
)

const scenarioYAML = `
scenarios:
  busy-store:
    s: 15
    S: 60
    rate: 5.0
    lead_time: 1.5
    seed: 7
  slow-mover:
    rate: 0.2
    mean_demand: 4.0
`

func writeScenarioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))
	return path
}

func TestLoadScenario_ReturnsNamedPreset(t *testing.T) {
	path := writeScenarioFile(t)

	scenario, err := LoadScenario(path, "busy-store")
	require.NoError(t, err)
	require.NotNil(t, scenario.ReorderPoint)
	assert.Equal(t, 15, *scenario.ReorderPoint)
	require.NotNil(t, scenario.Seed)
	assert.Equal(t, int64(7), *scenario.Seed)
	assert.Nil(t, scenario.UnitPrice, "unset fields stay nil")
}

func TestLoadScenario_UnknownNameFails(t *testing.T) {
	path := writeScenarioFile(t)
	_, err := LoadScenario(path, "no-such-store")
	assert.Error(t, err)
}

func TestLoadScenario_MissingFileFails(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"), "busy-store")
	assert.Error(t, err)
}

func TestScenarioMerge_PresetFillsUnchangedFlags(t *testing.T) {
	path := writeScenarioFile(t)
	scenario, err := LoadScenario(path, "busy-store")
	require.NoError(t, err)

	base := sim.Params{
		ReorderPoint: 10,
		OrderUpTo:    40,
		ArrivalRate:  2.0,
		LeadTime:     2.0,
		UnitPrice:    50,
		Seed:         42,
	}
	// No flags changed on this command, so every preset value applies.
	merged := scenario.Merge(base, &cobra.Command{})

	assert.Equal(t, 15, merged.ReorderPoint)
	assert.Equal(t, 60, merged.OrderUpTo)
	assert.Equal(t, 5.0, merged.ArrivalRate)
	assert.Equal(t, 1.5, merged.LeadTime)
	assert.Equal(t, int64(7), merged.Seed)
	// Fields the preset leaves out keep their flag values.
	assert.Equal(t, 50.0, merged.UnitPrice)
}

func TestScenarioMerge_ExplicitFlagWinsOverPreset(t *testing.T) {
	path := writeScenarioFile(t)
	scenario, err := LoadScenario(path, "busy-store")
	require.NoError(t, err)

	cmd := &cobra.Command{}
	var sFlag int
	cmd.Flags().IntVar(&sFlag, "s", 10, "")
	require.NoError(t, cmd.Flags().Set("s", "25"))

	merged := scenario.Merge(sim.Params{ReorderPoint: 25}, cmd)
	assert.Equal(t, 25, merged.ReorderPoint, "explicit --s beats the preset")
	assert.Equal(t, 60, merged.OrderUpTo, "untouched fields still come from the preset")
}
