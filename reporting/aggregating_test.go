package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestAggregatingSetRecordsInEvaluationOrder(t *testing.T) {
	ts, err := NewAggregatingTestSet("basic", nil)
	require.NoError(t, err)

	require.NoError(t, ts.Record(Pass("a")))
	require.NoError(t, ts.Record(Fail("b", "nope")))
	require.NoError(t, ts.Record(Pass("c")))

	sum, err := ts.Finish()
	require.NoError(t, err)
	assert.Equal(t, "basic", sum.Description)
	require.Len(t, sum.Entries, 3)
	assert.Equal(t, "a", sum.Entries[0].Result.ExprText)
	assert.Equal(t, "b", sum.Entries[1].Result.ExprText)
	assert.Equal(t, "c", sum.Entries[2].Result.ExprText)
}

func TestAggregatingSetKeepsChildSummariesAsCompositeEntries(t *testing.T) {
	ts, err := NewAggregatingTestSet("outer", nil)
	require.NoError(t, err)

	require.NoError(t, ts.Record(Pass("before")))
	child := Summary{Description: "inner", Entries: []Entry{resultEntry(Fail("x", ""))}}
	require.NoError(t, ts.RecordChild(child))

	sum, err := ts.Finish()
	require.NoError(t, err)
	require.Len(t, sum.Entries, 2)
	require.NotNil(t, sum.Entries[1].Child)
	assert.Equal(t, "inner", sum.Entries[1].Child.Description)

	// the child is a composite entry, not flattened into the parent
	assert.Nil(t, sum.Entries[1].Result)
	_, fail, _ := sum.Counts()
	assert.Equal(t, 1, fail)
}

func TestAggregatingSetNeverFailsFromRecord(t *testing.T) {
	ts, err := NewAggregatingTestSet("deferred", nil)
	require.NoError(t, err)
	assert.NoError(t, ts.Record(Fail("a", "")))
	assert.NoError(t, ts.Record(Error("b", nil)))
}

func TestAggregatingSetFinishDoesNotAbortOnFailures(t *testing.T) {
	ts, err := NewAggregatingTestSet("failing", nil)
	require.NoError(t, err)
	require.NoError(t, ts.Record(Fail("a", "")))

	sum, err := ts.Finish()
	assert.NoError(t, err)
	assert.False(t, sum.OK())
}

func TestAggregatingSetFinishTwiceIsAnError(t *testing.T) {
	ts, err := NewAggregatingTestSet("once", nil)
	require.NoError(t, err)
	_, err = ts.Finish()
	require.NoError(t, err)
	_, err = ts.Finish()
	assert.Error(t, err)
}

func TestAggregatingSetOptions(t *testing.T) {
	ts, err := NewAggregatingTestSet("configured", map[string]ldvalue.Value{
		OptionSwallowFailures: ldvalue.Bool(true),
		OptionVerbose:         ldvalue.Bool(true),
	})
	require.NoError(t, err)
	assert.True(t, ts.swallowsFailures())
	assert.True(t, ts.Verbose())

	ts, err = NewAggregatingTestSet("default options", nil)
	require.NoError(t, err)
	assert.False(t, ts.swallowsFailures())
	assert.False(t, ts.Verbose())
}

func TestAggregatingSetRejectsUnrecognizedOption(t *testing.T) {
	_, err := NewAggregatingTestSet("bad", map[string]ldvalue.Value{
		"colour": ldvalue.String("red"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unrecognized test set option "colour"`)
}

func TestAggregatingSetRejectsWronglyTypedOption(t *testing.T) {
	_, err := NewAggregatingTestSet("bad", map[string]ldvalue.Value{
		OptionVerbose: ldvalue.String("yes"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a boolean")
}
