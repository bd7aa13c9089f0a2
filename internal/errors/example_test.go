package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/Fuabioo/notesmcp/internal/errors"
)

// Example_basic demonstrates basic error creation and checking.
func Example_basic() {
	// Create a simple error
	err := errors.NoteNotFound("7f3a")
	fmt.Println(err)

	// Check the error code
	if errors.Is(err, errors.CodeNoteNotFound) {
		fmt.Println("Note not found")
	}

	// Output:
	// NOTE_NOT_FOUND: note "7f3a" not found
	// Note not found
}

// Example_wrapping demonstrates error wrapping.
func Example_wrapping() {
	// Simulate an I/O error
	ioErr := fs.ErrNotExist

	// Wrap it with a notesmcp error
	err := errors.StoreFailed(ioErr)
	fmt.Println(err)

	// Extract the code
	code := errors.Code(err)
	fmt.Println("Error code:", code)

	// Output:
	// STORE_FAILED: failed to persist note store: file does not exist
	// Error code: STORE_FAILED
}

// Example_checking demonstrates different ways to check errors.
func Example_checking() {
	err := errors.TitleRequired()

	// Method 1: Use the Is helper
	if errors.Is(err, errors.CodeTitleRequired) {
		fmt.Println("Missing title")
	}

	// Method 2: Extract and compare code
	if errors.Code(err) == errors.CodeTitleRequired {
		fmt.Println("Still missing")
	}

	// Output:
	// Missing title
	// Still missing
}
