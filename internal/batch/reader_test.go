package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadNumbersFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []NumberEntry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "plain numbers",
			fileContent: `20
892
7`,
			want: []NumberEntry{
				{Number: "20"},
				{Number: "892"},
				{Number: "7"},
			},
		},
		{
			name: "labels and comments",
			fileContent: `# phones
2095550101 = office
  20  =  door code  

# end`,
			want: []NumberEntry{
				{Number: "2095550101", Label: "office"},
				{Number: "20", Label: "door code"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "20\r\n892 = gate\r\n",
			want: []NumberEntry{
				{Number: "20"},
				{Number: "892", Label: "gate"},
			},
		},
		{
			name:        "phone formatting",
			fileContent: "+7 (495) 123-45-67 = Moscow",
			want: []NumberEntry{
				{Number: "74951234567", Label: "Moscow"},
			},
		},
		{
			name:        "label without number",
			fileContent: "= nothing",
			want:        nil,
		},
		{
			name:        "invalid characters are kept for validation",
			fileContent: "12ab",
			want: []NumberEntry{
				{Number: "12ab"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "numbers.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			got, err := ReadNumbersFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadNumbersFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadNumbersFile() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReadNumbersFile_NotFound(t *testing.T) {
	_, err := ReadNumbersFile("/nonexistent/numbers.txt")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := map[string]string{
		"20":                 "20",
		"209-555-0101":       "2095550101",
		"(209) 555.0101":     "2095550101",
		"+7 (495) 123-45-67": "74951234567",
		"12ab":               "12ab",
		"":                   "",
	}

	for in, want := range tests {
		if got := NormalizeNumber(in); got != want {
			t.Errorf("NormalizeNumber(%q) = %q, want %q", in, got, want)
		}
	}
}
