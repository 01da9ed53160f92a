package booking

import "testing"

func TestIsBlocking_RecognizedStatuses(t *testing.T) {
	for _, s := range []Status{StatusAgendada, StatusConfirmada, StatusRealizada} {
		if !s.IsBlocking() {
			t.Errorf("IsBlocking(%q) = false, want true", s)
		}
		if s.IsFreed() {
			t.Errorf("IsFreed(%q) = true, want false", s)
		}
	}
}

func TestIsFreed_RecognizedStatuses(t *testing.T) {
	for _, s := range []Status{StatusCancelada, StatusCanceladaPaciente, StatusCanceladaDentista, StatusFaltou} {
		if !s.IsFreed() {
			t.Errorf("IsFreed(%q) = false, want true", s)
		}
		if s.IsBlocking() {
			t.Errorf("IsBlocking(%q) = true, want false", s)
		}
	}
}

func TestUnknownStatuses(t *testing.T) {
	for _, s := range []Status{"", "unknown_status", "importado_legado", "agendada "} {
		if s.IsBlocking() {
			t.Errorf("IsBlocking(%q) = true, want false", s)
		}
		if s.IsFreed() {
			t.Errorf("IsFreed(%q) = true, want false", s)
		}
		if got := s.Category(); got != CategoryUnknown {
			t.Errorf("Category(%q) = %v, want unknown", s, got)
		}
	}
}

func TestStatusMatching_CaseSensitive(t *testing.T) {
	if Status("CANCELADA").IsFreed() {
		t.Error("IsFreed(CANCELADA) = true, want false")
	}
	if Status("Cancelada").IsFreed() {
		t.Error("IsFreed(Cancelada) = true, want false")
	}
	if Status("AGENDADA").IsBlocking() {
		t.Error("IsBlocking(AGENDADA) = true, want false")
	}
}

// Every status belongs to exactly one category.
func TestCategories_Disjoint(t *testing.T) {
	all := append(BlockingStatuses(), FreedStatuses()...)
	all = append(all, Status(""), Status("importado_legado"))
	for _, s := range all {
		if s.IsBlocking() && s.IsFreed() {
			t.Errorf("status %q is both blocking and freed", s)
		}
	}
}

func TestBlockingStatuses_StableEnumeration(t *testing.T) {
	got := BlockingStatuses()
	want := []Status{"agendada", "confirmada", "realizada"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("BlockingStatuses()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFreedStatuses_StableEnumeration(t *testing.T) {
	got := FreedStatuses()
	want := []Status{"cancelada", "cancelada_paciente", "cancelada_dentista", "faltou"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FreedStatuses()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryBlocking.String() != "blocking" || CategoryFreed.String() != "freed" || CategoryUnknown.String() != "unknown" {
		t.Error("unexpected StatusCategory string values")
	}
}

func TestVerifyStatusConfig(t *testing.T) {
	if err := VerifyStatusConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
