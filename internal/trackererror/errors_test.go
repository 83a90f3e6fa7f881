package trackererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidCategoryError(t *testing.T) {
	err := &InvalidCategoryError{Category: "Gambling", Known: []string{"Food", "Other"}}
	assert.Contains(t, err.Error(), "Gambling")
	assert.Contains(t, err.Error(), "Food")
}

func TestInvalidAmountError(t *testing.T) {
	err := &InvalidAmountError{Value: "-5", Reason: "must be positive"}
	assert.Contains(t, err.Error(), "-5")
	assert.Contains(t, err.Error(), "must be positive")
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &PersistenceError{Op: "save", Path: "expenses.txt", Err: cause}

	assert.Contains(t, err.Error(), "save")
	assert.Contains(t, err.Error(), "expenses.txt")
	assert.Equal(t, cause, errors.Unwrap(err))
}
