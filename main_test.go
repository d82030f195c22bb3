package main

import (
	"errors"
	"fmt"
	"testing"

	"rdprint/internal/auth"
	"rdprint/internal/orchestrator"

	"github.com/stretchr/testify/assert"
)

func TestAlreadyReported(t *testing.T) {
	assert.True(t, alreadyReported(nil))
	assert.True(t, alreadyReported(auth.ErrIncorrectPassword))
	assert.True(t, alreadyReported(fmt.Errorf("run: %w", orchestrator.ErrPrinterNotReady)))
	assert.False(t, alreadyReported(errors.New("excel crashed")))
}
