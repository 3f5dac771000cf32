package parse

import "testing"

func TestWeight(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"comma separator", "/seguimientopeso 115,2", 115.2, true},
		{"dot separator", "/seguimientopeso 115.2", 115.2, true},
		{"no number", "/seguimientopeso abc", 0, false},
		{"negative with unit", "-3.5 kg", -3.5, true},
		{"integer", "/seguimientopeso 90", 90, true},
		{"extra words", "/seguimientopeso hoy pesé 101,4 kg", 101.4, true},
		{"empty", "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Weight(tc.text)
			if ok != tc.ok {
				t.Fatalf("Weight(%q) ok=%v, want %v", tc.text, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("Weight(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestTimeAndText(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		ok      bool
		hour    int
		minute  int
		message string
	}{
		{"full form", []string{"09:00", "tomar", "agua"}, true, 9, 0, "tomar agua"},
		{"single digit hour", []string{"7:30", "beber", "agua"}, true, 7, 30, "beber agua"},
		{"invalid minute digits", []string{"9:0", "agua"}, false, 0, 0, "9:0 agua"},
		{"hour out of range", []string{"24:00", "x"}, false, 0, 0, "24:00 x"},
		{"minute out of range", []string{"10:60", "x"}, false, 0, 0, "10:60 x"},
		{"time only", []string{"23:59"}, true, 23, 59, ""},
		{"no args", nil, false, 0, 0, ""},
		{"not a time", []string{"mañana", "correr"}, false, 0, 0, "mañana correr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock, message, ok := TimeAndText(tc.args)
			if ok != tc.ok {
				t.Fatalf("TimeAndText(%v) ok=%v, want %v", tc.args, ok, tc.ok)
			}
			if message != tc.message {
				t.Fatalf("TimeAndText(%v) message=%q, want %q", tc.args, message, tc.message)
			}
			if ok && (clock.Hour != tc.hour || clock.Minute != tc.minute) {
				t.Fatalf("TimeAndText(%v) clock=%v, want %02d:%02d", tc.args, clock, tc.hour, tc.minute)
			}
		})
	}
}

func TestClockString(t *testing.T) {
	if got := (Clock{Hour: 7, Minute: 30}).String(); got != "07:30" {
		t.Fatalf("unexpected clock string: %s", got)
	}
	if got := (Clock{Hour: 23, Minute: 5}).String(); got != "23:05" {
		t.Fatalf("unexpected clock string: %s", got)
	}
}
