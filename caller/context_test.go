package caller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = NewContext("Model", "Compute")
	)

	assert.Equal("Model", c.Component)
	assert.Equal("Compute", c.Operation)
	assert.Equal("context_test.go", c.File)
}

func TestContextString(t *testing.T) {
	testData := []struct {
		context  Context
		expected string
	}{
		{Context{}, ""},
		{Context{Component: "Model"}, "Model"},
		{Context{Operation: "Compute"}, "Compute"},
		{Context{Component: "Model", Operation: "Compute"}, "Model.Compute"},
	}

	for _, record := range testData {
		assert.Equal(t, record.expected, record.context.String())
	}
}

func TestContextMetadata(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		map[string]interface{}{"component": "Model", "operation": "Compute"},
		Context{Component: "Model", Operation: "Compute"}.Metadata(),
	)

	assert.Equal(
		map[string]interface{}{"component": "Model", "operation": "Compute", "file": "model.go"},
		Context{Component: "Model", Operation: "Compute", File: "model.go"}.Metadata(),
	)
}
