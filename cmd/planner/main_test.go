package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gdg-garage/park-planner-api/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	park, duration, visitor = "", "", ""
	ageGroups, interests, focuses = nil, nil, nil
	jsonOutput = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlanCommand_JSON(t *testing.T) {
	out, err := execute(t, "plan", "--park", "disneysea", "--focus", "グルメ重視", "--delay", "0s", "--json")
	require.NoError(t, err)

	var plan planner.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, planner.SamplePlan(), plan)
}

func TestPlanCommand_RequiresPark(t *testing.T) {
	_, err := execute(t, "plan", "--park", "", "--delay", "0s")
	assert.ErrorContains(t, err, "select a park")
}

func TestPlanCommand_RejectsUnknownOption(t *testing.T) {
	_, err := execute(t, "plan", "--park", "disneyland", "--interest", "宇宙", "--delay", "0s")
	assert.ErrorContains(t, err, "unknown interests option")
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "東京ディズニーシー (disneysea)")
}
