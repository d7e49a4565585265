package security

import "testing"

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"空はリンク未設定として許可", "", nil},
		{"https", "https://example.com/jobs/123", nil},
		{"http", "http://example.com", nil},
		{"相対パス拒否", "/jobs/123", ErrLinkNotAbsolute},
		{"javascriptスキーム拒否", "javascript:alert(1)", ErrLinkInvalidScheme},
		{"ftpスキーム拒否", "ftp://example.com/file", ErrLinkInvalidScheme},
		{"ホストなし拒否", "https:///path", ErrLinkMissingHost},
		{"解釈不能なURL拒否", "https://exa mple.com\x7f", ErrLinkMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateLink(tt.raw); err != tt.wantErr {
				t.Errorf("ValidateLink(%q) = %v, want %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}
