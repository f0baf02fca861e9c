package types

import "testing"

func TestLocalizedTextIsEmpty(t *testing.T) {
	if !(LocalizedText{}).IsEmpty() {
		t.Fatal("zero value must be empty")
	}
	if !(LocalizedText{Ar: "  ", En: "\t"}).IsEmpty() {
		t.Fatal("whitespace-only renditions must be empty")
	}
	if (LocalizedText{En: "Hello"}).IsEmpty() {
		t.Fatal("a single rendition is enough")
	}
	if (LocalizedText{Ar: "مرحبا"}).IsEmpty() {
		t.Fatal("a single rendition is enough")
	}
}

func TestLocalizedTextScanValue(t *testing.T) {
	original := LocalizedText{Ar: "تخفيضات", En: "Sale"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var scanned LocalizedText
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scanned != original {
		t.Fatalf("round trip mismatch: %+v vs %+v", scanned, original)
	}

	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scanned.IsEmpty() {
		t.Fatal("nil scan must reset the value")
	}

	if err := scanned.Scan(42); err == nil {
		t.Fatal("expected error for unsupported scan type")
	}
}
