package pitch

import (
	"errors"
	"math"
	"testing"
)

func TestEqualTemperamentAdjustmentIsOne(t *testing.T) {
	registry := NewTemperamentRegistry()
	for note := 0; note < 24; note++ {
		for key := 0; key < Octave; key++ {
			adj, err := registry.Adjustment(registry.EqualTemperamentIndex(), note, key)
			if err != nil {
				t.Fatalf("Adjustment: %v", err)
			}
			if math.Abs(adj-1.0) > 1e-9 {
				t.Fatalf("note=%d key=%d: adjustment=%v, want 1.0", note, key, adj)
			}
		}
	}
}

func TestFindByName(t *testing.T) {
	registry := NewTemperamentRegistry()
	idx, ok := registry.FindByName("Equal")
	if !ok || idx != EqualTemperamentIndex {
		t.Fatalf("FindByName(Equal) = (%d, %v), want (%d, true)", idx, ok, EqualTemperamentIndex)
	}

	if _, ok := registry.FindByName("does not exist"); ok {
		t.Fatal("expected not found")
	}
}

func TestCustomTemperamentLifecycle(t *testing.T) {
	registry := NewTemperamentRegistry()
	builtinLen := registry.Len()

	custom := Temperament{Name: "My Tuning", Ratios: equalRatios()}
	idx, err := registry.AddCustom(custom)
	if err != nil {
		t.Fatalf("AddCustom: %v", err)
	}
	if idx != builtinLen {
		t.Fatalf("AddCustom index = %d, want %d", idx, builtinLen)
	}

	if err := registry.UpdateCustom(idx, custom); err != nil {
		t.Fatalf("UpdateCustom: %v", err)
	}

	if err := registry.UpdateCustom(0, custom); !errors.Is(err, ErrBuiltinTemperament) {
		t.Fatalf("UpdateCustom(builtin) err = %v, want ErrBuiltinTemperament", err)
	}

	if err := registry.RemoveCustom(idx); err != nil {
		t.Fatalf("RemoveCustom: %v", err)
	}
	if registry.Len() != builtinLen {
		t.Fatalf("Len after remove = %d, want %d", registry.Len(), builtinLen)
	}
}

func TestAddCustomRejectsInvalidRatios(t *testing.T) {
	registry := NewTemperamentRegistry()
	bad := Temperament{Name: "Bad"}
	if _, err := registry.AddCustom(bad); !errors.Is(err, ErrInvalidRatios) {
		t.Fatalf("AddCustom(zero ratios) err = %v, want ErrInvalidRatios", err)
	}
}

func equalRatios() [Octave]float64 {
	return builtinTemperaments[EqualTemperamentIndex].Ratios
}
