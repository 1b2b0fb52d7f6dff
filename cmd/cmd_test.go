package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/petdx/internal/explain"
)

const testModelDir = "../internal/diagnose/testdata"

func run(t *testing.T, args ...string) string {
	t.Helper()
	// Slice flags accumulate across executions of the same command tree.
	sym := predictCmd.Flags().Lookup("symptom").Value.(pflag.SliceValue)
	require.NoError(t, sym.Replace(nil))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestPredictCmd(t *testing.T) {
	out := run(t, "predict", "--model-dir", testModelDir, "--plain",
		"--animal", "Dog",
		"--symptom", "Vomiting", "--symptom", "Diarrhea", "--symptom", "Fever",
		"--symptom", "Lethargy", "--symptom", "Loss of appetite")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "🦠 Predicted Disease: Canine Parvovirus", lines[0])
	assert.Equal(t, "📌 Explanation: "+explain.Explain("Canine Parvovirus"), lines[1])
	assert.Equal(t, "⚠️ Danger Level: High", lines[2])
}

func TestPredictCmd_UnknownAnimal(t *testing.T) {
	out := run(t, "predict", "--model-dir", testModelDir, "--plain",
		"--animal", "Unicorn",
		"--symptom", "Vomiting", "--symptom", "Diarrhea", "--symptom", "Fever",
		"--symptom", "Lethargy", "--symptom", "Loss of appetite")

	assert.Contains(t, out, "⚠️ Error:")
	assert.Contains(t, out, "Please check input values.")
}

func TestExplainCmd(t *testing.T) {
	out := run(t, "explain", "--list=false", "Lyme")
	assert.Equal(t, explain.Explain("Lyme")+"\n", out)

	out = run(t, "explain", "--list=false", "lyme")
	assert.Equal(t, explain.NotFound+"\n", out)
}

func TestExplainCmd_List(t *testing.T) {
	out := run(t, "explain", "--list")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(explain.Diseases()))
}

func TestLabelsCmd(t *testing.T) {
	out := run(t, "labels", "--model-dir", testModelDir, "--json=false", "Danger")
	assert.Equal(t, "   0  High\n   1  Low\n   2  Medium\n", out)

	out = run(t, "labels", "--model-dir", testModelDir, "--json=false")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Cat, Dog, Horse")
}

func TestRenderResult_Styled(t *testing.T) {
	out := run(t, "predict", "--model-dir", testModelDir, "--plain=false",
		"--animal", "Dog",
		"--symptom", "Vomiting", "--symptom", "Diarrhea", "--symptom", "Fever",
		"--symptom", "Lethargy", "--symptom", "Sparkles")
	assert.Contains(t, out, "Canine Parvovirus")
	assert.Contains(t, out, "1 of 5 symptoms were not recognized")
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "petdx (devel)\n", run(t, "version"))
}
