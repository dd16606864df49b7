package todo

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestPriority_IsValid(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityLow, true},
		{PriorityMedium, true},
		{PriorityHigh, true},
		{Priority("low"), false},
		{Priority("URGENT"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.IsValid(); got != tt.valid {
				t.Errorf("Priority(%q).IsValid() = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	if !(PriorityLow.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityHigh.Rank()) {
		t.Fatalf("expected LOW < MEDIUM < HIGH, got %d, %d, %d",
			PriorityLow.Rank(), PriorityMedium.Rank(), PriorityHigh.Rank())
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "high", want: PriorityHigh},
		{input: " Medium ", want: PriorityMedium},
		{input: "LOW", want: PriorityLow},
		{input: "urgent", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Fatalf("expected ErrInvalidPriority, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "pending", want: StatusPending},
		{input: "In Progress", want: StatusInProgress},
		{input: "in-progress", want: StatusInProgress},
		{input: "DONE", want: StatusDone},
		{input: "closed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		from Status
		want Status
	}{
		{StatusPending, StatusInProgress},
		{StatusInProgress, StatusDone},
		{StatusDone, StatusPending},
		{Status("bogus"), StatusPending},
	}

	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("Status(%q).Next() = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{input: "none", want: SortNone},
		{input: "", want: SortNone},
		{input: "deadline", want: SortDeadLine},
		{input: "deadLine", want: SortDeadLine},
		{input: "due", want: SortDeadLine},
		{input: "updated", want: SortUpdatedAt},
		{input: "updatedAt", want: SortUpdatedAt},
		{input: "Priority", want: SortPriority},
		{input: "title", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSortKey) {
					t.Fatalf("expected ErrInvalidSortKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	if got, err := ParseOrder("desc"); err != nil || got != OrderDesc {
		t.Fatalf("ParseOrder(desc) = %q, %v", got, err)
	}
	if _, err := ParseOrder("sideways"); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestSortKey_JSONNull(t *testing.T) {
	data, err := json.Marshal(SortOptions{SortBy: SortNone, Order: OrderAsc})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"sortBy":null,"order":"ASC"}` {
		t.Fatalf("unexpected JSON: %s", data)
	}

	var decoded SortOptions
	if err := json.Unmarshal([]byte(`{"sortBy":"priority","order":"DESC"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.SortBy != SortPriority || decoded.Order != OrderDesc {
		t.Fatalf("unexpected decode: %+v", decoded)
	}

	decoded.SortBy = SortDeadLine
	if err := json.Unmarshal([]byte(`{"sortBy":null,"order":"ASC"}`), &decoded); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if decoded.SortBy != SortNone {
		t.Fatalf("expected null to decode as SortNone, got %q", decoded.SortBy)
	}

	if err := json.Unmarshal([]byte(`{"sortBy":"title"}`), &decoded); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestInitialState(t *testing.T) {
	state := InitialState()
	if len(state.Todos) != 0 {
		t.Fatalf("expected no todos, got %d", len(state.Todos))
	}
	if len(state.Filters.Status) != 0 || len(state.Filters.Priority) != 0 {
		t.Fatalf("expected empty filters, got %+v", state.Filters)
	}
	if state.Filters.StartDate != nil || state.Filters.EndDate != nil {
		t.Fatalf("expected unbounded dates, got %+v", state.Filters)
	}
	if state.Sort.SortBy != SortNone || state.Sort.Order != OrderAsc {
		t.Fatalf("expected unsorted ASC, got %+v", state.Sort)
	}
}

func TestParseTime(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-03-01T12:00:00Z", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"2026-03-01T12:00:00+02:00", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"2026-03-01T09:30", time.Date(2026, 3, 1, 9, 30, 0, 0, loc)},
		{" 2026-03-01 ", time.Date(2026, 3, 1, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input, loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	for _, input := range []string{"", "tomorrow", "03/01/2026"} {
		if _, err := ParseTime(input, loc); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("expected ErrInvalidTime for %q, got %v", input, err)
		}
	}
}
