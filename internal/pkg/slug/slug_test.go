package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Meditação para Iniciantes", "meditacao-para-iniciantes"},
		{"O que é Zazen?", "o-que-e-zazen"},
		{"  Prática --- de   Atenção  ", "pratica-de-atencao"},
		{"UPPER case", "upper-case"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.in), "Make(%q)", tt.in)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("meditacao-para-iniciantes"))
	assert.True(t, IsValid("zazen2025"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("-leading"))
	assert.False(t, IsValid("trailing-"))
	assert.False(t, IsValid("double--hyphen"))
	assert.False(t, IsValid("Maiúsculas"))
	assert.False(t, IsValid("com espaço"))
}
