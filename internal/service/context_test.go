package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	svc := NewContextService()

	sent := map[string]interface{}{"receita": float64(7), "porcoes": float64(2)}
	svc.Send(sent)

	got, err := svc.Take()
	require.NoError(t, err)
	assert.Equal(t, sent, got)

	// The slot is consumed: a second take must miss.
	_, err = svc.Take()
	assert.ErrorIs(t, err, ErrNoContext)
}

func TestContextHoldsArbitraryJSONValues(t *testing.T) {
	svc := NewContextService()

	// The slot is opaque: arrays and scalars are as valid as objects.
	for _, blob := range []interface{}{
		[]interface{}{float64(1), float64(2), float64(3)},
		"texto livre",
		float64(42),
	} {
		svc.Send(blob)
		got, err := svc.Take()
		require.NoError(t, err)
		assert.Equal(t, blob, got)
	}
}

func TestContextTakeEmpty(t *testing.T) {
	svc := NewContextService()

	_, err := svc.Take()
	assert.ErrorIs(t, err, ErrNoContext)
}

func TestContextSendOverwrites(t *testing.T) {
	svc := NewContextService()

	assert.False(t, svc.Send(map[string]interface{}{"versao": "antiga"}))
	assert.True(t, svc.Send(map[string]interface{}{"versao": "nova"}))

	got, err := svc.Take()
	require.NoError(t, err)
	assert.Equal(t, "nova", got.(map[string]interface{})["versao"])

	// The overwritten value is gone for good.
	_, err = svc.Take()
	assert.ErrorIs(t, err, ErrNoContext)
}

func TestContextSendAfterTakeIsNotAReplace(t *testing.T) {
	svc := NewContextService()

	assert.False(t, svc.Send(map[string]interface{}{"rodada": float64(1)}))
	_, err := svc.Take()
	require.NoError(t, err)

	assert.False(t, svc.Send(map[string]interface{}{"rodada": float64(2)}))
	got, err := svc.Take()
	require.NoError(t, err)
	assert.Equal(t, float64(2), got.(map[string]interface{})["rodada"])
}

func TestContextConcurrentTakesConsumeOnce(t *testing.T) {
	svc := NewContextService()
	svc.Send(map[string]interface{}{"unico": true})

	const readers = 32
	var wg sync.WaitGroup
	hits := make(chan interface{}, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if blob, err := svc.Take(); err == nil {
				hits <- blob
			}
		}()
	}
	wg.Wait()
	close(hits)

	var winners int
	for range hits {
		winners++
	}
	assert.Equal(t, 1, winners, "exactly one reader may consume the value")
}
