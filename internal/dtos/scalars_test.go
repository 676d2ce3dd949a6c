package dtos

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{`7`, 7, false},
		{`"7"`, 7, false},
		{`" 12 "`, 12, false},
		{`null`, 0, false},
		{`"seven"`, 0, true},
		{`1.5`, 0, true},
		{`-3`, 0, true},
		{`true`, 0, true},
		{`{"id":1}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if id != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, id, tt.want)
			}
		})
	}
}

func TestTextUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Text
		wantErr bool
	}{
		{`"Remote"`, "Remote", false},
		{`42`, "42", false},
		{`1e3`, "1e3", false},
		{`false`, "false", false},
		{`null`, "", false},
		{`["a"]`, "", true},
		{`{"city":"Austin"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var text Text
			err := json.Unmarshal([]byte(tt.in), &text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if text != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, text, tt.want)
			}
		})
	}
}

func TestJobCreationRequestAcceptsStringID(t *testing.T) {
	var req JobCreationRequest
	body := `{"title":"QA Engineer","department":"Engineering","location":"Remote","recruiter_id":"1"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if req.RecruiterID != 1 || req.Title != "QA Engineer" {
		t.Errorf("unexpected request %+v", req)
	}
}
