package service_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	quill_mock "github.com/dev-mohitbeniwal/quill/test/mock"
	"github.com/dev-mohitbeniwal/quill/util"
)

func newTestCache(t *testing.T) (*util.CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr:        mr.Addr(),
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	return util.NewCacheService(client, nil), mr
}

func newAuditMock() *quill_mock.MockAuditService {
	m := &quill_mock.MockAuditService{}
	m.On("Record", mock.Anything, mock.Anything).Return()
	return m
}
