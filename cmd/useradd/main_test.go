package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassword(t *testing.T) {
	pw, err := readPassword("from-env", strings.NewReader("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", pw)

	pw, err = readPassword("", strings.NewReader("s3cret\r\nmore\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)

	pw, err = readPassword("", strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)

	_, err = readPassword("", strings.NewReader(""))
	assert.Error(t, err)
}
