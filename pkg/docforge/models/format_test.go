package models

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		token    string
		expected Format
		wantErr  bool
	}{
		{"pdf", FormatPDF, false},
		{"DOCX", FormatDocx, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"pptx", FormatPptx, false},
		{"txt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error, got %v", tt.token, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", tt.token, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %v, expected %v", tt.token, got, tt.expected)
		}
	}
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
		wantErr  bool
	}{
		{"report.pdf", FormatPDF, false},
		{"data.yml", FormatYAML, false},
		{"out/nested/sheet.XLSX", FormatXLSX, false},
		{"noextension", "", true},
		{"archive.tar.gz", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromFilename(tt.filename)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FormatFromFilename(%q): expected error, got %v", tt.filename, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatFromFilename(%q) failed: %v", tt.filename, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("FormatFromFilename(%q) = %v, expected %v", tt.filename, got, tt.expected)
		}
	}
}

func TestFormatClasses(t *testing.T) {
	for _, f := range DataFormats() {
		if !f.IsDataFormat() {
			t.Errorf("%v should be a data format", f)
		}
		if f.IsFlowFormat() {
			t.Errorf("%v should not be a flow format", f)
		}
	}
	for _, f := range []Format{FormatPDF, FormatDocx} {
		if !f.IsFlowFormat() || f.IsDataFormat() {
			t.Errorf("%v should be a flow format only", f)
		}
	}
	if FormatPptx.IsDataFormat() || FormatPptx.IsFlowFormat() {
		t.Error("pptx belongs to neither class")
	}
}
