package main

import "testing"

func TestCheckFlags(t *testing.T) {
	tests := []struct {
		name    string
		verify  bool
		preview string
		wantErr bool
	}{
		{"write", false, "", false},
		{"write with preview", false, "sheet.png", false},
		{"verify", true, "", false},
		{"verify with preview", true, "sheet.png", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkFlags(tt.verify, tt.preview); (err != nil) != tt.wantErr {
				t.Errorf("checkFlags(%v, %q) = %v, wantErr %v", tt.verify, tt.preview, err, tt.wantErr)
			}
		})
	}
}
