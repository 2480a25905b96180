package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	quill_mock "github.com/dev-mohitbeniwal/quill/test/mock"
)

func TestHealthCheck(t *testing.T) {
	_, mr := newTestCache(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	driver := &quill_mock.MockDriver{}
	driver.On("VerifyConnectivity", mock.Anything).Return(nil).Once()
	svc := service.NewHealthService(driver, client)
	assert.Equal(t, model.HealthCheck{Status: "ok", DBStatus: "ok", RedisStatus: "ok"}, svc.Check(context.Background()))

	driver.On("VerifyConnectivity", mock.Anything).Return(errors.New("down")).Once()
	mr.Close()
	assert.Equal(t, model.HealthCheck{Status: "error", DBStatus: "error", RedisStatus: "error"}, svc.Check(context.Background()))
}
