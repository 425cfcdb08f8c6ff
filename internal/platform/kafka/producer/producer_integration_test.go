//go:build integration

package producer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"membership/internal/platform/kafka/producer"
	"membership/pkg/testutil/containers"
)

type ProducerSuite struct {
	suite.Suite
	broker string
}

func TestProducerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ProducerSuite))
}

func (s *ProducerSuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).SeedBroker
}

func (s *ProducerSuite) TestPublishIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const topic = "membership.applications.test"
	p, err := producer.New([]string{s.broker}, topic)
	s.Require().NoError(err)
	defer p.Close()

	s.Require().NoError(p.Ping(ctx))
	s.Require().NoError(p.Publish(ctx, "app-1", []byte(`{"type":"membership_application_submitted"}`)))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().NotEmpty(records)
	s.Equal("app-1", string(records[0].Key))
	s.JSONEq(`{"type":"membership_application_submitted"}`, string(records[0].Value))
}
