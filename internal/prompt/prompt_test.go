package prompt

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("AWS SSO\n"))
	value, err := ReadLine(reader, "Enter Display Name")
	assert.NoError(t, err)
	assert.Equal(t, "AWS SSO", value)
}

func TestReadLine_TrimsWhitespace(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  t1 \r\n"))
	value, err := ReadLine(reader, "Enter Tenant ID")
	assert.NoError(t, err)
	assert.Equal(t, "t1", value)
}

func TestReadLine_SequentialReads(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("t1\nc1\n"))

	first, err := ReadLine(reader, "Enter Tenant ID")
	assert.NoError(t, err)
	assert.Equal(t, "t1", first)

	second, err := ReadLine(reader, "Enter App (Client) ID")
	assert.NoError(t, err)
	assert.Equal(t, "c1", second)
}

func TestReadLine_MissingTrailingNewline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("t1"))
	value, err := ReadLine(reader, "Enter Tenant ID")
	assert.NoError(t, err)
	assert.Equal(t, "t1", value)
}

func TestReadLine_EmptyInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	_, err := ReadLine(reader, "Enter Tenant ID")
	assert.Error(t, err)
}
