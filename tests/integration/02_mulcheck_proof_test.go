package integration_test

import (
	"fmt"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/airs"
	vybiummultistark "github.com/vybium/vybium-multistark/pkg/vybium-multistark"
)

// Test02_MulCheckProof exercises constraint degrees 2 through 4 on a wide
// trace. Degree 4 uses the full headroom of the quotient domain.
func Test02_MulCheckProof(t *testing.T) {
	t.Log("=== Test 02: Multiplication AIR at Degrees 2-4 ===")

	config := vybiummultistark.DefaultConfig()
	publicValues := []field.Element{}

	cases := []struct {
		degree uint64
		rows   int
	}{
		{degree: 2, rows: 32},
		{degree: 3, rows: 32},
		{degree: 4, rows: 32},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("Degree%d", tc.degree), func(t *testing.T) {
			air := airs.NewMulAir(tc.degree)
			trace, err := air.RandomValidTrace(tc.rows)
			if err != nil {
				t.Fatalf("Failed to generate trace: %v", err)
			}

			t.Logf("Generating proof (degree %d, %d rows, width %d)...", tc.degree, tc.rows, air.Width())
			proof, err := vybiummultistark.Prove(config, air, trace, publicValues)
			if err != nil {
				t.Fatalf("Proof generation failed: %v", err)
			}
			t.Logf("Proof generated. Quotient chunks: %d", len(proof.QuotientChunks))

			if err := vybiummultistark.Verify(config, air, proof, publicValues); err != nil {
				t.Fatalf("Verification failed: %v", err)
			}
		})
	}

	t.Run("UnsatisfyingTraceRejected", func(t *testing.T) {
		air := airs.NewMulAir(3)
		trace, err := air.RandomValidTrace(16)
		if err != nil {
			t.Fatalf("Failed to generate trace: %v", err)
		}
		// Break one product in the middle of the trace.
		trace.Set(5, 2, trace.Get(5, 2).Add(field.One))

		proof, err := vybiummultistark.Prove(config, air, trace, publicValues)
		if err != nil {
			t.Fatalf("Proof generation failed: %v", err)
		}
		if err := vybiummultistark.Verify(config, air, proof, publicValues); err == nil {
			t.Error("Proof over an unsatisfying trace verified")
		}
	})
}
