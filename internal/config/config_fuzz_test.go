package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
)

func FuzzLoadConfig(f *testing.F) {
	f.Add([]byte("server:\n  port: 8080\n"))
	f.Add([]byte("data:\n  max_limit: 0\n"))
	f.Add([]byte("server:\n  allowed_origins: [\"https://a.b\", \"*\"]\n"))
	f.Add([]byte("log: [1, 2]\n"))
	f.Add([]byte(":::"))

	f.Fuzz(func(t *testing.T, data []byte) {
		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return
		}

		cfg, err := LoadFrom(v)
		if err != nil {
			return
		}

		if ValidateConfigWithDetails(cfg).HasErrors() {
			t.Errorf("loaded configuration fails validation: %+v", cfg)
		}
		l := cfg.Limits()
		if l.DefaultLimit < 1 || l.DefaultLimit > l.MaxLimit {
			t.Errorf("default limit %d outside [1, %d]", l.DefaultLimit, l.MaxLimit)
		}
	})
}
