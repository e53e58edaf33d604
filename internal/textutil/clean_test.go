package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple digits",
			input: "Respira 4 veces",
			want:  "Respira cuatro veces",
		},
		{
			name:  "composed tens",
			input: "Cuenta hasta 47",
			want:  "Cuenta hasta cuarenta y siete",
		},
		{
			name:  "round ten",
			input: "Dame 30 segundos",
			want:  "Dame treinta segundos",
		},
		{
			name:  "hundred",
			input: "Del 0 al 100",
			want:  "Del cero al cien",
		},
		{
			name:  "clock time",
			input: "Nos vemos a las 8:30",
			want:  "Nos vemos a las ocho treinta",
		},
		{
			name:  "clock on the hour",
			input: "A las 15:00 en punto",
			want:  "A las quince en punto",
		},
		{
			name:  "large numbers untouched",
			input: "El año 2024",
			want:  "El año 2024",
		},
		{
			name:  "no numbers",
			input: "Hola, ¿cómo estás?",
			want:  "Hola, ¿cómo estás?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertNumbers(tt.input))
		})
	}
}

func TestCleanForTTS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "ellipsis collapses",
			input: "Piensa en ello... con calma",
			want:  "Piensa en ello. con calma",
		},
		{
			name:  "long dash becomes comma",
			input: "Respira — despacio",
			want:  "Respira , despacio",
		},
		{
			name:  "whitespace collapses",
			input: "Respira   profundo\n\ny suelta",
			want:  "Respira profundo y suelta",
		},
		{
			name:  "numbers converted",
			input: "Inhala 4 segundos",
			want:  "Inhala cuatro segundos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanForTTS(tt.input))
		})
	}
}

func TestWelcomeMessage(t *testing.T) {
	msg := WelcomeMessage("Ana")
	assert.Contains(t, msg, "Ana")
	assert.Contains(t, msg, "María")

	// The placeholder name never leaks into the greeting.
	generic := WelcomeMessage("Usuario")
	assert.NotContains(t, generic, "Usuario")

	empty := WelcomeMessage("")
	assert.True(t, strings.Contains(empty, "María"))
}
