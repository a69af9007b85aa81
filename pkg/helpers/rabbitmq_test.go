package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRabbitPublisher_NilIsNotConnected(t *testing.T) {
	var p *RabbitPublisher
	require.ErrorIs(t, p.PublishJSON(context.Background(), map[string]string{"a": "b"}), errPublisherClosed)
	p.Close()

	require.ErrorIs(t, (&RabbitPublisher{}).PublishJSON(context.Background(), nil), errPublisherClosed)
}
