package storage

import "testing"

func TestValidateContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{"pdf", "application/pdf", false},
		{"word", "application/msword", false},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", false},
		{"rtf", "application/rtf", false},
		{"plain text", "text/plain", false},
		{"empty accepted", "", false},
		{"with charset parameter", "text/plain; charset=utf-8", false},
		{"mixed case", "Application/PDF", false},
		{"executable", "application/x-msdownload", true},
		{"image", "image/png", true},
		{"html", "text/html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentType(tt.contentType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContentType(%q) error = %v, wantErr %v", tt.contentType, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	const max = 1 << 20

	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"small file", 1024, false},
		{"exactly max", max, false},
		{"one over max", max + 1, true},
		{"zero", 0, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileSize(tt.size, max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileSize(%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
		})
	}
}
