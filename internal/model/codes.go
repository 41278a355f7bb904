package model

import "fmt"

// Copy and card identifiers are generated from deterministic sequences keyed
// by how many rows already exist, so intake and re-provisioning never guess.

func CopyCode(bookID, seq int) string {
	return fmt.Sprintf("B%04d-C%03d", bookID, seq)
}

func CopyBarcode(bookID, seq int) string {
	return fmt.Sprintf("CPY%04d%04d", bookID, seq)
}

func CardNumber(studentID, seq int) string {
	return fmt.Sprintf("LIB-%06d-%02d", studentID, seq)
}

func CardBarcode(studentID, seq int) string {
	return fmt.Sprintf("CRD%06d%02d", studentID, seq)
}
