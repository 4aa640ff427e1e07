package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotenvIfPresent: .env 파일이 존재하면 환경 변수로 로드합니다.
// 파일이 없는 경우는 에러가 아닙니다.
func LoadDotenvIfPresent(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		_, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat dotenv file failed path=%s: %w", path, err)
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load dotenv file failed path=%s: %w", path, err)
		}
	}

	return nil
}
