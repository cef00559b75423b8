package domain

import "testing"

func TestDeriveStatusKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"In Review", "IN_REVIEW"},
		{"code   review", "CODE_REVIEW"},
		{"done", "DONE"},
		{"  QA  ", "QA"},
		{"To Do", "TO_DO"},
		{"tabs\tand\nnewlines", "TABS_AND_NEWLINES"},
		{"ALREADY_KEYED", "ALREADY_KEYED"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DeriveStatusKey(tc.in); got != tc.want {
			t.Errorf("DeriveStatusKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDeriveStatusKeyIdempotent(t *testing.T) {
	inputs := []string{"In Review", "code   review", "QA", "", "a b c", "IN_PROGRESS", "  spaced  out  "}
	for _, s := range inputs {
		once := DeriveStatusKey(s)
		if twice := DeriveStatusKey(once); twice != once {
			t.Errorf("DeriveStatusKey(%q): second application changed %q to %q", s, once, twice)
		}
	}
}

func TestEffectiveColumnsStaticOnly(t *testing.T) {
	got := EffectiveColumns(nil)
	want := []EffectiveColumn{
		{Status: "TODO", Title: "TODO", Static: true},
		{Status: "IN_PROGRESS", Title: "DOING", Static: true},
		{Status: "DONE", Title: "DONE", Static: true},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEffectiveColumnsSortsStoredByOrder(t *testing.T) {
	cols := []Column{
		{Status: "QA", Title: "QA", Order: 3},
		{Status: "IN_REVIEW", Title: "In Review", Order: 0},
	}
	got := EffectiveColumns(cols)
	if len(got) != 5 {
		t.Fatalf("expected 5 columns, got %d", len(got))
	}
	if got[3].Status != "IN_REVIEW" || got[4].Status != "QA" {
		t.Errorf("stored columns out of order: %+v", got[3:])
	}
	if got[3].Static || got[4].Static {
		t.Errorf("stored columns must not be static: %+v", got[3:])
	}
}

func TestEffectiveColumnsStaticCollisionKeepsPosition(t *testing.T) {
	cols := []Column{
		{Status: "IN_REVIEW", Title: "In Review", Order: 0},
		{Status: "TODO", Title: "Backlog", Order: 1},
	}
	got := EffectiveColumns(cols)
	if len(got) != 4 {
		t.Fatalf("expected 4 columns (no duplicate TODO), got %d: %+v", len(got), got)
	}
	if got[0].Status != "TODO" || got[0].Title != "Backlog" || !got[0].Static {
		t.Errorf("static TODO should keep position 0 and take the stored title, got %+v", got[0])
	}
	if got[3].Status != "IN_REVIEW" {
		t.Errorf("expected IN_REVIEW after statics, got %+v", got[3])
	}
}

func TestNextColumnOrder(t *testing.T) {
	if got := NextColumnOrder(nil); got != 0 {
		t.Errorf("NextColumnOrder(nil) = %d, want 0", got)
	}
	cols := []Column{{Order: 0}, {Order: 3}}
	if got := NextColumnOrder(cols); got != 4 {
		t.Errorf("NextColumnOrder([0,3]) = %d, want 4", got)
	}
}

func TestIsDeletable(t *testing.T) {
	for _, status := range []string{"TODO", "IN_PROGRESS", "DONE"} {
		if IsDeletable(status) {
			t.Errorf("IsDeletable(%q) = true, want false", status)
		}
	}
	if !IsDeletable("CODE_REVIEW") {
		t.Error(`IsDeletable("CODE_REVIEW") = false, want true`)
	}
}

func TestTaskApplyDefaults(t *testing.T) {
	var task Task
	task.ApplyDefaults()
	if task.Status != StatusTodo {
		t.Errorf("default status = %q, want %q", task.Status, StatusTodo)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("default priority = %q, want %q", task.Priority, PriorityMedium)
	}

	task = Task{Status: "QA", Priority: PriorityHigh}
	task.ApplyDefaults()
	if task.Status != "QA" || task.Priority != PriorityHigh {
		t.Errorf("defaults must not overwrite set fields, got %+v", task)
	}
}
