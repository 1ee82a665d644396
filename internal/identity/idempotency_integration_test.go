//go:build integration

package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"touchline/internal/identity"
	"touchline/internal/platform/config"
	platformredis "touchline/internal/platform/redis"
	"touchline/pkg/testutil/containers"
)

type KeyRegistrySuite struct {
	suite.Suite
	redis    *containers.RedisContainer
	client   *platformredis.Client
	registry *identity.KeyRegistry
}

func TestKeyRegistrySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KeyRegistrySuite))
}

func (s *KeyRegistrySuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())

	client, err := platformredis.New(config.RedisConfig{
		URL:          s.redis.URL,
		PoolSize:     5,
		MinIdleConns: 1,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	s.Require().NoError(err)
	s.Require().NotNil(client)
	s.client = client
	s.registry = identity.NewKeyRegistry(client)
}

func (s *KeyRegistrySuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

func (s *KeyRegistrySuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *KeyRegistrySuite) TestRecordAndLookup() {
	ctx := context.Background()
	key := uuid.NewString()

	s.Require().NoError(s.registry.Record(ctx, key, "maya@example.com"))

	username, err := s.registry.Lookup(ctx, key)
	s.Require().NoError(err)
	s.Equal("maya@example.com", username)
}

func (s *KeyRegistrySuite) TestLookupUnknownKeyReturnsEmpty() {
	ctx := context.Background()

	username, err := s.registry.Lookup(ctx, uuid.NewString())
	s.Require().NoError(err)
	s.Empty(username)
}

func (s *KeyRegistrySuite) TestRecordSetsExpiry() {
	ctx := context.Background()
	key := uuid.NewString()

	s.Require().NoError(s.registry.Record(ctx, key, "maya@example.com"))

	ttl, err := s.client.TTL(ctx, "identity:attempt:"+key).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0), "attempt keys must expire on their own")
	s.LessOrEqual(ttl, 24*time.Hour)
}

func (s *KeyRegistrySuite) TestNilRegistryFromNilClient() {
	s.Nil(identity.NewKeyRegistry(nil))
}
