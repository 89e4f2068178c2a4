package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPep440RangeAdapterSatisfies(t *testing.T) {
	adapter := NewPep440RangeAdapter()

	tests := []struct {
		name      string
		version   string
		rangeExpr string
		expect    bool
	}{
		{"gte match", "1.26.0", ">=1.20.0", true},
		{"gte miss", "1.19.0", ">=1.20.0", false},
		{"bounded range match", "1.5", ">=1.0,<2.0", true},
		{"bounded range miss", "2.0", ">=1.0,<2.0", false},
		{"exact specifier", "2.3.0", "==2.3.0", true},
		{"exact specifier miss", "2.3.1", "==2.3.0", false},
		{"compatible release match", "2.1.4", "~=2.1", true},
		{"compatible release miss", "3.0", "~=2.1", false},
		{"identical string", "1.2.3", "1.2.3", true},
		{"empty range matches anything", "0.1", "", true},
		{"unparseable range", "1.0", ">>invalid<<", false},
		{"unparseable version", "not-a-pep440!!!", ">=1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, adapter.Satisfies(tt.version, tt.rangeExpr))
		})
	}
}

func TestPep440RangeAdapterCachesAcrossCalls(t *testing.T) {
	adapter := NewPep440RangeAdapter()
	for i := 0; i < 2; i++ {
		assert.True(t, adapter.Satisfies("1.26.0", ">=1.20.0"))
	}
	assert.Len(t, adapter.specs, 1)
	assert.Len(t, adapter.versions, 1)
}
