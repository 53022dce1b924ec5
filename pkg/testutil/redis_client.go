package testutil

import (
	"context"
)

type MockRedisClient struct {
	ExistFunc func(ctx context.Context, key string) (bool, error)
	SetFunc   func(ctx context.Context, key, value string) error
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	return false, nil
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}

	return nil
}
