package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecipientListUnmarshalString(t *testing.T) {
	t.Parallel()

	var r RecipientList
	if err := json.Unmarshal([]byte(`"a@x.com, b@y.com"`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r) != 1 || r[0] != "a@x.com, b@y.com" {
		t.Errorf("got %v, want single raw entry", r)
	}
}

func TestRecipientListUnmarshalArray(t *testing.T) {
	t.Parallel()

	var r RecipientList
	if err := json.Unmarshal([]byte(`["a@x.com","b@y.com"]`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual([]string(r), []string{"a@x.com", "b@y.com"}) {
		t.Errorf("got %v, want [a@x.com b@y.com]", r)
	}
}

func TestRecipientListUnmarshalRejectsOtherShapes(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`42`, `{"a":1}`, `[1,2]`} {
		var r RecipientList
		if err := json.Unmarshal([]byte(input), &r); err == nil {
			t.Errorf("input %s: expected error, got %v", input, r)
		}
	}
}

func TestRecipientListNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   RecipientList
		want []string
	}{
		{
			name: "comma separated with noise",
			in:   RecipientList{"a@x.com, b@y.com ,, c@z.com"},
			want: []string{"a@x.com", "b@y.com", "c@z.com"},
		},
		{
			name: "array entries trimmed",
			in:   RecipientList{" a@x.com ", "b@y.com"},
			want: []string{"a@x.com", "b@y.com"},
		},
		{
			name: "array entry containing commas",
			in:   RecipientList{"a@x.com,b@y.com", "c@z.com"},
			want: []string{"a@x.com", "b@y.com", "c@z.com"},
		},
		{
			name: "all whitespace",
			in:   RecipientList{"   ", " , "},
			want: nil,
		},
		{
			name: "empty list",
			in:   RecipientList{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecipientListMarshalAlwaysArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(RecipientList{"a@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `["a@x.com"]` {
		t.Errorf("got %s, want [\"a@x.com\"]", data)
	}
}

func TestOutgoingMessageAllRecipients(t *testing.T) {
	t.Parallel()

	msg := OutgoingMessage{
		To:  []string{"a@x.com"},
		Cc:  []string{"b@y.com"},
		Bcc: []string{"c@z.com"},
	}
	got := msg.AllRecipients()
	want := []string{"a@x.com", "b@y.com", "c@z.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
