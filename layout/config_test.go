package layout

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestConfig_ValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero config should validate with defaults: %v", err)
	}
	if cfg.LocationWidths != DefaultLocationWidths {
		t.Errorf("LocationWidths = %v, want defaults %v", cfg.LocationWidths, DefaultLocationWidths)
	}
	if cfg.QRSizeCM != DefaultQRSizeCM {
		t.Errorf("QRSizeCM = %v, want %v", cfg.QRSizeCM, DefaultQRSizeCM)
	}
}

func TestConfig_ValidateWidthSum(t *testing.T) {
	tests := []struct {
		name   string
		widths LocationWidths
		wantOK bool
	}{
		{"exact", LocationWidths{0.25, 0.20, 0.20, 0.20, 0.15}, true},
		{"within tolerance high", LocationWidths{0.25, 0.20, 0.20, 0.20, 0.155}, true},
		{"within tolerance low", LocationWidths{0.25, 0.20, 0.20, 0.20, 0.145}, true},
		{"too high", LocationWidths{0.30, 0.25, 0.25, 0.25, 0.15}, false},
		{"too low", LocationWidths{0.20, 0.20, 0.20, 0.20, 0.10}, false},
		{"zero fraction", LocationWidths{0.40, 0.20, 0.20, 0.20, 0.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{LocationWidths: tt.widths}
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate(%v) failed: %v", tt.widths, err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatalf("Validate(%v) should fail", tt.widths)
				}
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("error type = %T, want *ConfigError", err)
				}
			}
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	cfg := Config{LocationWidths: LocationWidths{0.5, 0.2, 0.2, 0.2, 0.2}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "1.300") {
		t.Errorf("message should include the actual sum: %q", err.Error())
	}
}

func TestNormalizeWidths(t *testing.T) {
	in := LocationWidths{0.50, 0.40, 0.40, 0.40, 0.30} // sums to 2.0
	out, err := NormalizeWidths(in)
	if err != nil {
		t.Fatalf("NormalizeWidths failed: %v", err)
	}
	if math.Abs(out.Sum()-1.0) > 1e-9 {
		t.Errorf("normalized sum = %v, want 1.0", out.Sum())
	}
	// Proportions are preserved.
	if math.Abs(out[0]-0.25) > 1e-9 {
		t.Errorf("out[0] = %v, want 0.25", out[0])
	}
}

func TestNormalizeWidths_ZeroSum(t *testing.T) {
	if _, err := NormalizeWidths(LocationWidths{}); err == nil {
		t.Error("NormalizeWidths should fail on zero sum")
	}
}
