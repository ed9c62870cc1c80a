package service

import (
	"strings"
	"testing"
)

func TestNuevoCodigo(t *testing.T) {
	for _, prefix := range []string{"TKT", "OPR", "VEH", "C", "P", "M", "O"} {
		for i := 0; i < 50; i++ {
			cod := nuevoCodigo(prefix)
			if !strings.HasPrefix(cod, prefix) {
				t.Fatalf("code %q lost prefix %q", cod, prefix)
			}
			if len(cod) > 8 {
				t.Fatalf("code %q exceeds varchar(8)", cod)
			}
			// Short prefixes keep the full 5+3 digit suffix.
			if len(prefix) == 1 && len(cod) != 8 {
				t.Fatalf("code %q with prefix %q not padded to 8", cod, prefix)
			}
		}
	}
}
