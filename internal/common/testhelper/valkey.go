// Package testhelper: 테스트 공용 헬퍼 (miniredis, in-memory sqlite)
package testhelper

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/valkey-io/valkey-go"
)

// NewTestValkeyClient: miniredis 인스턴스를 띄우고 연결된 클라이언트를 생성합니다.
// 외부 Redis 의존 없이 캐시 동작을 검증할 때 사용합니다.
func NewTestValkeyClient(t *testing.T) valkey.Client {
	t.Helper()

	srv := miniredis.RunT(t)

	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:       []string{srv.Addr()},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("create valkey client failed (addr=%s): %v", srv.Addr(), err)
	}

	t.Cleanup(client.Close)
	return client
}

// UniqueTestPrefix: 테스트별로 고유한 키 prefix를 생성합니다.
func UniqueTestPrefix(t *testing.T) string {
	return "test:" + t.Name() + ":"
}
