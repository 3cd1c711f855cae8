package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/importador-clientes/pkg/taxid"
)

func TestNormalize_QuitaSeparadores(t *testing.T) {
	cases := map[string]string{
		"123.456.789-00":     "12345678900",
		"12.345.678/0001-95": "12345678000195",
		"  987-65 ":          "98765",
		"":                   "",
		"ABC.1":              "ABC1",
	}
	for in, want := range cases {
		assert.Equal(t, want, taxid.Normalize(in), "entrada %q", in)
	}
}

func TestExceedsMaxLength(t *testing.T) {
	assert.False(t, taxid.ExceedsMaxLength("12345678000195"), "14 caracteres es el límite permitido")
	assert.True(t, taxid.ExceedsMaxLength("1234567890123456"))
	assert.False(t, taxid.ExceedsMaxLength(""))
	// cuenta caracteres, no bytes
	assert.False(t, taxid.ExceedsMaxLength("ççççççççççççç"))
}

func TestLengthReason(t *testing.T) {
	assert.Equal(t, "exceeds maximum length of 14 characters", taxid.LengthReason())
}

func TestClassify(t *testing.T) {
	assert.Equal(t, taxid.KindCPF, taxid.Classify("12345678900"))
	assert.Equal(t, taxid.KindCNPJ, taxid.Classify("12345678000195"))
	assert.Equal(t, taxid.KindUnknown, taxid.Classify("123"))
	assert.Equal(t, taxid.KindUnknown, taxid.Classify("1234567890A"))
}
