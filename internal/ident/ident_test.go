package ident

import "testing"

func TestNextEmptyStartsAtOne(t *testing.T) {
	if got := Next(nil, "BRG"); got != "BRG001" {
		t.Errorf("Next(nil, BRG) = %s, mau BRG001", got)
	}
}

func TestNextUsesMaxNotCount(t *testing.T) {
	// BRG003 dan BRG004 sudah pernah dihapus: max+1, bukan count+1
	existing := []string{"BRG001", "BRG002", "BRG005"}
	if got := Next(existing, "BRG"); got != "BRG006" {
		t.Errorf("Next = %s, mau BRG006", got)
	}
}

func TestNextIgnoresOtherPrefixes(t *testing.T) {
	existing := []string{"PB009", "BRG002"}
	if got := Next(existing, "BRG"); got != "BRG003" {
		t.Errorf("Next = %s, mau BRG003", got)
	}
}

func TestNextIgnoresMalformedSuffix(t *testing.T) {
	existing := []string{"BRGX", "BRG", "BRG007"}
	if got := Next(existing, "BRG"); got != "BRG008" {
		t.Errorf("Next = %s, mau BRG008", got)
	}
}

func TestNextPastThreeDigits(t *testing.T) {
	// %03d tidak memotong di atas 999
	existing := []string{"PJ999"}
	if got := Next(existing, "PJ"); got != "PJ1000" {
		t.Errorf("Next = %s, mau PJ1000", got)
	}
}
