package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Cómo proteger la pintura", "como-proteger-la-pintura"},
		{"Tratamiento cerámico 9H", "tratamiento-ceramico-9h"},
		{"  espacios   múltiples  ", "espacios-multiples"},
		{"¡Señales & símbolos!", "senales-simbolos"},
		{"ya-con-guiones", "ya-con-guiones"},
		{"doble--guion", "doble-guion"},
		{"ÑANDÚ", "nandu"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
