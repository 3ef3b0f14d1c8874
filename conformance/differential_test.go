// Package conformance differentially tests ljparse against a
// second, independent JSON implementation: parse the same input with
// both, and check the resulting trees agree — catching divergences
// neither implementation's own test suite would surface alone.
package conformance_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	cyberphone "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/latticeforge/ljson/ljparse"
	"github.com/latticeforge/ljson/ljvalue"
)

// toComparable recursively converts a Value into plain Go data (maps,
// slices, bool, float64, string, nil) so go-cmp can diff it — Value's
// fields are unexported by design (spec §3's tagged-union shape), so
// structural comparison goes through the typed accessor API rather than
// reflection into the struct itself.
func toComparable(v *ljvalue.Value) any {
	switch v.Type() {
	case ljvalue.Null:
		return nil
	case ljvalue.True:
		return true
	case ljvalue.False:
		return false
	case ljvalue.Number:
		return v.Num()
	case ljvalue.String:
		return string(v.Str())
	case ljvalue.Array:
		out := make([]any, v.Size())
		for i := range out {
			out[i] = toComparable(v.Index(i))
		}
		return out
	case ljvalue.Object:
		out := make(map[string]any, v.ObjectSize())
		for i := 0; i < v.ObjectSize(); i++ {
			out[string(v.Key(i))] = toComparable(v.ObjectValue(i))
		}
		return out
	default:
		panic("conformance: unreachable value type")
	}
}

// agreementVectors are inputs both implementations accept and must agree
// on structurally once each has independently parsed it (and, for the
// reference implementation, canonicalized it — a canonicalizing
// transform never changes the value a conforming JSON text denotes).
var agreementVectors = []string{
	`{}`,
	`[]`,
	`null`,
	`true`,
	`false`,
	`0`,
	`-17`,
	`3.1416`,
	`1.0e10`,
	`"hello world"`,
	`"line\nbreak\ttab"`,
	`{"a":1,"b":[1,2,3],"c":{"nested":true}}`,
	`[1,2,3,[4,5,[6,7]],{"k":"v"}]`,
	`{"unicode":"café"}`,
}

func TestAgreementVectorsStructurallyMatchCyberphone(t *testing.T) {
	for _, in := range agreementVectors {
		t.Run(in, func(t *testing.T) {
			ours, err := ljparse.Parse([]byte(in))
			if err != nil {
				t.Fatalf("ljparse rejected a vector both should accept: %v", err)
			}

			canon, err := cyberphone.Transform([]byte(in))
			if err != nil {
				t.Fatalf("cyberphone rejected a vector both should accept: %v", err)
			}

			reparsed, err := ljparse.Parse(canon)
			if err != nil {
				t.Fatalf("ljparse could not parse cyberphone's own canonical output: %v", err)
			}

			if diff := cmp.Diff(toComparable(ours), toComparable(reparsed)); diff != "" {
				t.Fatalf("value trees disagree after cyberphone round-trip (-ours +cyberphone):\n%s", diff)
			}
		})
	}
}

// TestNumberAgreement checks that numbers surviving a round trip through
// the reference canonicalizer still compare equal under our own algebra,
// independent of the go-cmp-based structural check above.
func TestNumberAgreement(t *testing.T) {
	for _, in := range []string{"0", "-0", "1", "100", "1.5", "1e10", "-1.5e-10"} {
		ours, err := ljparse.Parse([]byte(in))
		if err != nil {
			t.Fatalf("%s: ljparse: %v", in, err)
		}
		canon, err := cyberphone.Transform([]byte(in))
		if err != nil {
			t.Fatalf("%s: cyberphone: %v", in, err)
		}
		theirs, err := ljparse.Parse(canon)
		if err != nil {
			t.Fatalf("%s: ljparse(canon): %v", in, err)
		}
		if !ljvalue.IsEqual(ours, theirs) {
			t.Fatalf("%s: number disagreement: ours=%v canon=%v", in, ours.Num(), theirs.Num())
		}
	}
}
