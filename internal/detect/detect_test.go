package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainClass_SimpleDeclaration(t *testing.T) {
	name, err := MainClass("public class Hello { }")
	require.NoError(t, err)
	assert.Equal(t, "Hello", name)
}

func TestMainClass_LeftmostWins(t *testing.T) {
	source := `
public class First {
}

public class Second {
}
`
	name, err := MainClass(source)
	require.NoError(t, err)
	assert.Equal(t, "First", name)
}

func TestMainClass_IgnoresLeadingContent(t *testing.T) {
	source := `package com.example;

import java.util.List;

public class Greeter {
    public static void main(String[] args) {
        System.out.println("hi");
    }
}
`
	name, err := MainClass(source)
	require.NoError(t, err)
	assert.Equal(t, "Greeter", name)
}

func TestMainClass_WhitespaceBetweenTokens(t *testing.T) {
	name, err := MainClass("public \t\n class \n Worker {}")
	require.NoError(t, err)
	assert.Equal(t, "Worker", name)
}

func TestMainClass_UnderscoreAndDigits(t *testing.T) {
	name, err := MainClass("public class _Task2 {}")
	require.NoError(t, err)
	assert.Equal(t, "_Task2", name)
}

func TestMainClass_NoMatch(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"non-public class", "class Hidden {}"},
		{"interface", "public interface Api {}"},
		{"plain text", "this is not java at all"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MainClass(tc.source)
			assert.ErrorIs(t, err, ErrNoMatch)
		})
	}
}
