package jsondec

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxInputSize != DefaultMaxInputSize {
		t.Errorf("MaxInputSize = %d; want %d", cfg.MaxInputSize, DefaultMaxInputSize)
	}
	if cfg.MaxNestingDepth != DefaultMaxNestingDepth {
		t.Errorf("MaxNestingDepth = %d; want %d", cfg.MaxNestingDepth, DefaultMaxNestingDepth)
	}
	if cfg.AllowComments {
		t.Error("AllowComments enabled by default; strict JSON must be the default")
	}
	if cfg.PreserveNumbers {
		t.Error("PreserveNumbers enabled by default")
	}
	if cfg.StrictMode {
		t.Error("StrictMode enabled by default")
	}
	if !cfg.ValidateInput {
		t.Error("ValidateInput disabled by default")
	}
	if !cfg.EnableCache || !cfg.EnableInterning {
		t.Error("cache and interning should be on by default")
	}
}

func TestConfigValidateClamps(t *testing.T) {
	cfg := &Config{
		MaxInputSize:     -1,
		MaxNestingDepth:  100000,
		MaxObjectKeys:    -5,
		MaxArrayElements: 0,
		MaxCacheSize:     -1,
		CacheTTL:         -time.Second,
		EnableCache:      true,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.MaxInputSize != MinInputSizeLimit {
		t.Errorf("MaxInputSize = %d; want %d", cfg.MaxInputSize, MinInputSizeLimit)
	}
	if cfg.MaxNestingDepth != MaxNestingDepth {
		t.Errorf("MaxNestingDepth = %d; want %d", cfg.MaxNestingDepth, MaxNestingDepth)
	}
	if cfg.MaxObjectKeys <= 0 || cfg.MaxArrayElements <= 0 {
		t.Errorf("limits not corrected: keys=%d elements=%d", cfg.MaxObjectKeys, cfg.MaxArrayElements)
	}
	if cfg.EnableCache {
		t.Error("negative cache size should disable the cache")
	}
	if cfg.CacheTTL != DefaultCacheTTL {
		t.Errorf("CacheTTL = %v; want %v", cfg.CacheTTL, DefaultCacheTTL)
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.MaxNestingDepth = 7
	clone.AllowComments = true
	if cfg.MaxNestingDepth == 7 || cfg.AllowComments {
		t.Error("mutating the clone affected the original")
	}

	var nilCfg *Config
	if nilCfg.Clone() == nil {
		t.Error("Clone of nil should return defaults")
	}
}

func TestConfigPresets(t *testing.T) {
	high := HighSecurityConfig()
	if !high.StrictMode {
		t.Error("HighSecurityConfig should enable strict mode")
	}
	if high.MaxNestingDepth >= DefaultMaxNestingDepth {
		t.Error("HighSecurityConfig should tighten the depth limit")
	}
	if high.MaxInputSize >= DefaultMaxInputSize {
		t.Error("HighSecurityConfig should tighten the size limit")
	}

	large := LargeDataConfig()
	if large.MaxInputSize <= DefaultMaxInputSize {
		t.Error("LargeDataConfig should raise the size limit")
	}
	if large.MaxObjectKeys <= DefaultMaxObjectKeys {
		t.Error("LargeDataConfig should raise the key limit")
	}
}

func TestConfigAccessors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowComments = true
	cfg.PreserveNumbers = true

	if !cfg.IsCommentsAllowed() || !cfg.ShouldPreserveNumbers() {
		t.Error("accessors disagree with fields")
	}
	if cfg.GetMaxInputSize() != cfg.MaxInputSize {
		t.Error("GetMaxInputSize disagrees with field")
	}
	if cfg.GetCacheTTL() != cfg.CacheTTL {
		t.Error("GetCacheTTL disagrees with field")
	}
}
