package domain

import "testing"

// FuzzParsePolicyID checks that parsing never panics on arbitrary input and
// that accepted input round-trips through String.
func FuzzParsePolicyID(f *testing.F) {
	f.Add("")
	f.Add("0")
	f.Add("18446744073709551615")
	f.Add("18446744073709551616")
	f.Add("-1")
	f.Add("not-an-id")
	f.Add("007")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParsePolicyID(input)
		if err != nil {
			return
		}
		roundTrip, err := ParsePolicyID(id.String())
		if err != nil {
			t.Errorf("accepted id failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Errorf("round-trip changed id: %v != %v", roundTrip, id)
		}
	})
}
