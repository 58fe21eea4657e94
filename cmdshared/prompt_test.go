package cmdshared

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestReadValue(t *testing.T) {
	SetInput(strings.NewReader("Custom\r\n\n"))
	assert.Equal(t, "Custom", ReadValue("Name: ", "Default"))
	assert.Equal(t, "Default", ReadValue("Name: ", "Default"))
}

func TestPromptYesNo(t *testing.T) {
	SetInput(strings.NewReader("no\n\nyes\n"))
	assert.False(t, PromptYesNo("? "))
	assert.True(t, PromptYesNo("? "))
	assert.True(t, PromptYesNo("? "))
}

func TestNonInteractive(t *testing.T) {
	viper.Set("non-interactive", true)
	t.Cleanup(func() { viper.Set("non-interactive", false) })

	SetInput(strings.NewReader("ignored\n"))
	assert.Equal(t, "Default", ReadValue("Name: ", "Default"))
	assert.True(t, PromptYesNo("? "))
}
