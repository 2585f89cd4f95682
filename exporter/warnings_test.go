package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hutchesonn/camh-ead-exporter/record"
)

func TestWarningAggregator(t *testing.T) {
	w := NewWarningAggregator()
	for _, id := range []string{"a", "b", "c", "d", ""} {
		w.Add(WarningMalformedMarkup, id)
	}
	w.Add(WarningNodeFailed, "x")

	assert.Equal(t, 5, w.Count(WarningMalformedMarkup))
	assert.Equal(t, 0, w.Count(WarningUnknownTerm))
	assert.Equal(t, 6, w.Total())

	core, logs := observer.New(zapcore.WarnLevel)
	w.LogAll(zap.New(core), "res-1")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "markup that is not well formed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "res-1", fields["resource"])
	assert.Equal(t, int64(5), fields["occurrences"])
	assert.Equal(t, "a, b, c", fields["examples"])
	assert.Equal(t, WarningNodeFailed, entries[1].ContextMap()["warning"])
}

func TestWarningAggregator_Empty(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewWarningAggregator().LogAll(zap.New(core), "res-1")
	assert.Zero(t, logs.Len())
}

// TestExport_Logging verifies node failures and the warning summary reach
// the configured logger.
func TestExport_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := testOptions()
	opts.Logger = zap.New(core)

	doc := document(record.Description{Title: "Root", Terms: []record.Term{{NodeName: "occupation", Content: "x"}}})
	doc.Children = append(doc.Children, nil)
	run(t, doc, opts)

	assert.Equal(t, 1, logs.FilterMessage("component export failed").Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("warning", WarningUnknownTerm)).Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("warning", WarningNodeFailed)).Len())

	done := logs.FilterMessage("export finished").AllUntimed()
	require.Len(t, done, 1)
	assert.Equal(t, int64(1), done[0].ContextMap()["failed"])
	assert.Equal(t, true, done[0].ContextMap()["complete"])
}
