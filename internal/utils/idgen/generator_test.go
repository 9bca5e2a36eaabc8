package idgen

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		length     int
		wantErr    bool
		wantPrefix string
	}{
		{
			name:       "generate item ID",
			prefix:     "item",
			length:     16,
			wantErr:    false,
			wantPrefix: "item_",
		},
		{
			name:       "generate turn ID",
			prefix:     "turn",
			length:     16,
			wantErr:    false,
			wantPrefix: "turn_",
		},
		{
			name:       "generate trader ID",
			prefix:     "trdr",
			length:     16,
			wantErr:    false,
			wantPrefix: "trdr_",
		},
		{
			name:       "generate short ID",
			prefix:     "test",
			length:     8,
			wantErr:    false,
			wantPrefix: "test_",
		},
		{
			name:       "generate long ID",
			prefix:     "test",
			length:     32,
			wantErr:    false,
			wantPrefix: "test_",
		},
		{
			name:    "empty prefix",
			prefix:  "",
			length:  16,
			wantErr: true,
		},
		{
			name:    "zero length",
			prefix:  "item",
			length:  0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSecureID(tt.prefix, tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateSecureID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if !strings.HasPrefix(got, tt.wantPrefix) {
					t.Errorf("GenerateSecureID() = %v, want prefix %v", got, tt.wantPrefix)
				}
				expectedLen := len(tt.prefix) + 1 + tt.length
				if len(got) != expectedLen {
					t.Errorf("GenerateSecureID() length = %v, want %v", len(got), expectedLen)
				}
				suffix := got[len(tt.prefix)+1:]
				for _, char := range suffix {
					if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
						t.Errorf("GenerateSecureID() contains invalid character: %c", char)
					}
				}
			}
		})
	}
}

func TestGenerateSecureID_Uniqueness(t *testing.T) {
	const iterations = 10000
	seen := make(map[string]bool)

	for i := 0; i < iterations; i++ {
		id, err := GenerateSecureID("item", 16)
		if err != nil {
			t.Fatalf("GenerateSecureID() error = %v", err)
		}
		if seen[id] {
			t.Errorf("GenerateSecureID() generated duplicate ID: %v", id)
		}
		seen[id] = true
	}

	if len(seen) != iterations {
		t.Errorf("Expected %d unique IDs, got %d", iterations, len(seen))
	}
}

func TestValidateIDFormat(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		expectedPrefix string
		want           bool
	}{
		{
			name:           "valid item ID",
			id:             "item_a3f8d2k9p1m4n7q2",
			expectedPrefix: "item",
			want:           true,
		},
		{
			name:           "valid turn ID",
			id:             "turn_x7y2z5w8r3t6u9v1",
			expectedPrefix: "turn",
			want:           true,
		},
		{
			name:           "wrong prefix",
			id:             "item_a3f8d2k9p1m4n7q2",
			expectedPrefix: "turn",
			want:           false,
		},
		{
			name:           "missing underscore",
			id:             "itema3f8d2k9p1m4n7q2",
			expectedPrefix: "item",
			want:           false,
		},
		{
			name:           "empty suffix",
			id:             "item_",
			expectedPrefix: "item",
			want:           false,
		},
		{
			name:           "invalid characters (uppercase)",
			id:             "item_A3F8D2K9P1M4N7Q2",
			expectedPrefix: "item",
			want:           false,
		},
		{
			name:           "invalid characters (special chars)",
			id:             "item_a3f8-d2k9-p1m4",
			expectedPrefix: "item",
			want:           false,
		},
		{
			name:           "invalid characters (underscore in suffix)",
			id:             "item_a3f8_d2k9",
			expectedPrefix: "item",
			want:           false,
		},
		{
			name:           "empty ID",
			id:             "",
			expectedPrefix: "item",
			want:           false,
		},
		{
			name:           "only prefix",
			id:             "item",
			expectedPrefix: "item",
			want:           false,
		},
		{
			name:           "numbers only suffix",
			id:             "test_123456789",
			expectedPrefix: "test",
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateIDFormat(tt.id, tt.expectedPrefix); got != tt.want {
				t.Errorf("ValidateIDFormat(%q, %q) = %v, want %v", tt.id, tt.expectedPrefix, got, tt.want)
			}
		})
	}
}

func TestValidateIDFormat_GeneratedIDs(t *testing.T) {
	prefixes := []string{"item", "turn", "trdr"}
	lengths := []int{8, 16, 32}

	for _, prefix := range prefixes {
		for _, length := range lengths {
			t.Run(fmt.Sprintf("%s_%d", prefix, length), func(t *testing.T) {
				id, err := GenerateSecureID(prefix, length)
				if err != nil {
					t.Fatalf("GenerateSecureID() error = %v", err)
				}
				if !ValidateIDFormat(id, prefix) {
					t.Errorf("Generated ID %q failed validation with prefix %q", id, prefix)
				}
			})
		}
	}
}

func TestHashKey256_Deterministic(t *testing.T) {
	key := "test-key"
	secret := []byte("secret")

	hash1 := HashKey256(key, secret)
	hash2 := HashKey256(key, secret)

	if hash1 != hash2 {
		t.Errorf("HashKey256() not deterministic: %v != %v", hash1, hash2)
	}
	if len(hash1) != 64 {
		t.Errorf("HashKey256() length = %v, want 64", len(hash1))
	}
}

func TestHashKey256_DifferentInputs(t *testing.T) {
	secret := []byte("secret")

	hash1 := HashKey256("key1", secret)
	hash2 := HashKey256("key2", secret)

	if hash1 == hash2 {
		t.Errorf("HashKey256() generated same hash for different keys")
	}
}

func BenchmarkGenerateSecureID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateSecureID("turn", 16)
		if err != nil {
			b.Fatal(err)
		}
	}
}
