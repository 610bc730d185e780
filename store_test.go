package authprovider

import "testing"

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()

	// Missing key reads as empty, not an error
	value, err := store.Get(StorageKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "" {
		t.Errorf("Get() = %v, want empty", value)
	}

	if err := store.Set(StorageKey, "tok-123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err = store.Get(StorageKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "tok-123" {
		t.Errorf("Get() = %v, want tok-123", value)
	}

	// Overwrite
	if err := store.Set(StorageKey, "tok-456"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, _ = store.Get(StorageKey)
	if value != "tok-456" {
		t.Errorf("Get() after overwrite = %v, want tok-456", value)
	}

	if err := store.Remove(StorageKey); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	value, _ = store.Get(StorageKey)
	if value != "" {
		t.Errorf("Get() after Remove = %v, want empty", value)
	}

	// Removing a missing key is not an error
	if err := store.Remove(StorageKey); err != nil {
		t.Errorf("Remove() of missing key error = %v", err)
	}
}
