package lending

import "testing"

func TestSummarize(t *testing.T) {
	entries := sampleEntries(t) // SEC1/ACC1 40@400, SEC2/ACC1 10@120, SEC1/ACC2 5@50

	t.Run("by security", func(t *testing.T) {
		rows := SummarizeBySecurity(entries)
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[0].Key != "SEC1" || !rows[0].Quantity.Equal(Q(45)) || !rows[0].Amount.Equal(A(450)) {
			t.Errorf("SEC1 row = %+v, want quantity 45 amount 450", rows[0])
		}
		if rows[1].Key != "SEC2" || !rows[1].Quantity.Equal(Q(10)) || !rows[1].Amount.Equal(A(120)) {
			t.Errorf("SEC2 row = %+v, want quantity 10 amount 120", rows[1])
		}
	})

	t.Run("by account", func(t *testing.T) {
		rows := SummarizeByAccount(entries)
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[0].Key != "ACC1" || !rows[0].Quantity.Equal(Q(50)) || !rows[0].Amount.Equal(A(520)) {
			t.Errorf("ACC1 row = %+v, want quantity 50 amount 520", rows[0])
		}
		if rows[1].Key != "ACC2" || !rows[1].Quantity.Equal(Q(5)) || !rows[1].Amount.Equal(A(50)) {
			t.Errorf("ACC2 row = %+v, want quantity 5 amount 50", rows[1])
		}
	})

	t.Run("empty journal", func(t *testing.T) {
		if rows := SummarizeBySecurity(nil); len(rows) != 0 {
			t.Errorf("SummarizeBySecurity(nil) = %v, want empty", rows)
		}
	})
}
