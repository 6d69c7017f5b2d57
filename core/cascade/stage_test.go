package cascade

import "testing"

func TestParseStage(t *testing.T) {
	cases := []struct {
		in   string
		want Stage
		ok   bool
	}{
		{"openssl", StageOpenSSL, true},
		{"qiskit", StageQiskit, true},
		{"cirq", StageCirq, true},
		{"OpenSSL", StageOpenSSL, true},
		{" CIRQ ", StageCirq, true},
		{"", 0, false},
		{"aer", 0, false},
		{"openssl,qiskit", 0, false},
	}
	for _, c := range cases {
		got, err := ParseStage(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseStage(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseStage(%q): want error", c.in)
		}
	}
}

func TestNormalizeCanonicalOrder(t *testing.T) {
	got, err := Normalize([]Stage{StageCirq, StageOpenSSL, StageQiskit, StageCirq})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []Stage{StageOpenSSL, StageQiskit, StageCirq}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if _, err := Normalize(nil); err == nil {
		t.Fatal("empty cascade must fail")
	}
}

// Stage names are a CLI compatibility contract.
func TestStageNamesStable(t *testing.T) {
	if StageOpenSSL.String() != "openssl" ||
		StageQiskit.String() != "qiskit" ||
		StageCirq.String() != "cirq" {
		t.Fatalf("stage names changed: %q %q %q",
			StageOpenSSL, StageQiskit, StageCirq)
	}
}
