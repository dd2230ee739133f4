package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
	mdwlog "github.com/msto63/strlab/foundation/core/log"
	"github.com/msto63/strlab/pkg/sequence"
)

func TestMeasure_Results(t *testing.T) {
	report, err := New().Measure(10)
	require.NoError(t, err)

	assert.Equal(t, 10, report.N)
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10", report.Sequence)
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err, "run id should be a uuid")

	require.Len(t, report.Results, 4)
	for i, s := range sequence.Strategies() {
		assert.Equal(t, s.Name, report.Results[i].Label)
		assert.Equal(t, s.Description, report.Results[i].Description)
		assert.GreaterOrEqual(t, int64(report.Results[i].Elapsed), int64(0))
	}
}

func TestMeasure_InvalidN(t *testing.T) {
	for _, n := range []int{0, -4} {
		report, err := New().Measure(n)
		require.Error(t, err)
		assert.Nil(t, report)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
	}
}

func TestMeasure_DetectsDivergentStrategy(t *testing.T) {
	strategies := append(sequence.Strategies()[:1:1], sequence.Strategy{
		Name:        "Broken",
		Description: "drops the last number",
		Build: func(n int) (string, error) {
			out, err := sequence.AppendBuilder(n)
			if err != nil {
				return "", err
			}
			return out[:strings.LastIndex(out, " ")], nil
		},
	})

	_, err := New(WithStrategies(strategies)).Measure(5)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInternal))
	assert.Contains(t, err.Error(), "Broken")
}

func TestMeasure_NoStrategies(t *testing.T) {
	_, err := New(WithStrategies(nil)).Measure(5)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInternal))
}

func TestMeasure_LogsEveryStrategy(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatText,
		Output: &buf,
	})

	report, err := New(WithLogger(logger)).Measure(3)
	require.NoError(t, err)

	out := buf.String()
	for _, r := range report.Results {
		assert.Contains(t, out, "strategy="+r.Label)
	}
	assert.Equal(t, 4, strings.Count(out, "operation=sequence.build"))
	assert.Contains(t, out, "run_id="+report.RunID)
	assert.Contains(t, out, "n=3")
	assert.Contains(t, out, "{bench}")
	assert.NotContains(t, out, "building sequence")
}

func TestMeasure_TraceAnnouncesEachStrategy(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelTrace,
		Format: mdwlog.FormatText,
		Output: &buf,
		Name:   "strlab",
	})

	_, err := New(WithLogger(logger)).Measure(2)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "building sequence"))
	assert.NotContains(t, out, "{strlab}")

	first := strings.Index(out, "strategy="+sequence.LabelAppendConcat)
	last := strings.Index(out, "strategy="+sequence.LabelPrependBuffer)
	assert.Less(t, first, last)
}

func TestMeasure_LargeNOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	report, err := New().Measure(20000)
	require.NoError(t, err)

	byLabel := make(map[string]Result)
	for _, r := range report.Results {
		byLabel[r.Label] = r
	}
	assert.Less(t,
		int64(byLabel[sequence.LabelAppendBuilder].Elapsed),
		int64(byLabel[sequence.LabelPrependConcat].Elapsed),
		"builder append should beat prepending to an immutable string")
}
