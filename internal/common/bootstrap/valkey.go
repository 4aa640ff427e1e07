package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/valkey-io/valkey-go"

	commonconfig "github.com/sinseon-market/seller-ranking-go/internal/common/config"
	"github.com/sinseon-market/seller-ranking-go/internal/common/valkeyx"
)

// ToValkeyConfig: 캐시 연결을 위한 Valkey 설정 객체를 생성합니다.
func ToValkeyConfig(cfg commonconfig.RedisConfig) valkeyx.Config {
	return valkeyx.Config{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DisableCache: false, // 프로덕션에서는 클라이언트 사이드 캐싱 활성화
	}
}

// NewAndPingValkeyClient: Valkey 클라이언트를 생성하고 Ping으로 연결성을 확인합니다.
// 연결 실패 시 생성된 리소스를 정리하고 에러를 반환합니다.
func NewAndPingValkeyClient(
	ctx context.Context,
	cfg commonconfig.RedisConfig,
	logger *slog.Logger,
) (valkey.Client, func(), error) {
	client, err := valkeyx.NewClient(ToValkeyConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("create valkey client failed: %w", err)
	}

	closeFn := func() {
		client.Close()
		logger.Debug("valkey_client_closed")
	}

	if pingErr := valkeyx.Ping(ctx, client); pingErr != nil {
		closeFn()
		return nil, nil, fmt.Errorf("valkey ping failed: %w", pingErr)
	}

	return client, closeFn, nil
}
