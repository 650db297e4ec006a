package capture

import "testing"

func TestRequiredChannels(t *testing.T) {
	tests := []struct {
		name    string
		mapping []int
		want    int
	}{
		{"first channel only", []int{0}, 1},
		{"stereo pair", []int{0, 1}, 2},
		{"sparse selection", []int{0, 3}, 4},
		{"reordered", []int{5, 2}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requiredChannels(tt.mapping); got != tt.want {
				t.Errorf("requiredChannels(%v) = %d, want %d", tt.mapping, got, tt.want)
			}
		})
	}
}

func TestMatchDeviceByIndex(t *testing.T) {
	names := []string{"Built-in Microphone", "USB Audio", "Loopback"}

	idx, err := matchDevice(names, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}

	if _, err := matchDevice(names, "3"); err == nil {
		t.Error("expected out-of-range error for index 3")
	}
	if _, err := matchDevice(names, "-1"); err == nil {
		t.Error("expected out-of-range error for index -1")
	}
}

func TestMatchDeviceBySubstring(t *testing.T) {
	names := []string{"Built-in Microphone", "USB Audio", "Loopback"}

	idx, err := matchDevice(names, "usb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}

	// First match wins.
	idx, err = matchDevice(names, "o")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}

	if _, err := matchDevice(names, "bluetooth"); err == nil {
		t.Error("expected error for unmatched query")
	}
}
