package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	p := NewProducer(Config{
		Brokers: []string{"localhost:9092", "localhost:9093"},
	})

	require.NotNil(t, p)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, p.cfg.Brokers)
	assert.Empty(t, p.writers)
}

func TestProducer_WriterIsPerTopic(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w1 := p.writer("credit.applications")
	w2 := p.writer("credit.applications")
	w3 := p.writer("credit.fraud")

	require.NotNil(t, w1)
	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
	assert.Len(t, p.writers, 2)
}

func TestProducer_WriterHonoursBatchTimeout(t *testing.T) {
	p := NewProducer(Config{
		Brokers:      []string{"localhost:9092"},
		BatchTimeout: 50 * time.Millisecond,
	})

	w := p.writer("credit.applications")
	assert.Equal(t, 50*time.Millisecond, w.BatchTimeout)

	// Zero config falls back to the package default.
	def := NewProducer(Config{Brokers: []string{"localhost:9092"}}).writer("t")
	assert.Equal(t, defaultBatchTimeout, def.BatchTimeout)
}

func TestProducer_Close(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	p.writer("credit.applications")
	p.writer("credit.fraud")
	require.Len(t, p.writers, 2)

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}
