package config

import (
	"fmt"
	"os"
	"strconv"
)

// デフォルトの1値あたり容量上限（1MB、localStorage相当）
const defaultMaxValueBytes = 1024 * 1024

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）

	CartStoreFile          string // ファイルKVストアのパス
	CartStoreMaxValueBytes int    // 1値あたりの容量上限

	DatabaseURL string // 指定時はpostgresのKVストアを使う
}

// Loadは環境変数
func Load() (Config, error) {
	maxBytes, err := atoiOrDefault("CART_STORE_MAX_VALUE_BYTES", defaultMaxValueBytes)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),

		CartStoreFile:          os.Getenv("CART_STORE_FILE"),
		CartStoreMaxValueBytes: maxBytes,

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}

	//ファイルストアのパスはデフォルトあり
	if cfg.CartStoreFile == "" {
		cfg.CartStoreFile = "data/gentle_souls_kv.json"
	}

	return cfg, nil
}

func atoiOrDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return i, nil
}
